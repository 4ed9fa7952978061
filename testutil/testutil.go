// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/team-mood/auth"
	"github.com/danielhkuo/team-mood/cliparse"
	"github.com/danielhkuo/team-mood/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each test gets its own database; no external services needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single pooled connection keeps every query on the same
	// in-memory database.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3319,
		DatabaseURL:   "file::memory:",
		DatabaseType:  "sqlite",
		AuthTokenSalt: "test-auth-salt",
	}
}

// CreateTestTeam creates a team and returns its ID
func CreateTestTeam(t *testing.T, db *sql.DB, name string) string {
	t.Helper()

	teamID := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO team (id, name, created_at)
		VALUES ($1, $2, $3)
	`, teamID, name, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test team: %v", err)
	}

	return teamID
}

// CreateTestAccount creates an account (optionally on a team) and
// returns its ID and a valid auth token for it
func CreateTestAccount(t *testing.T, db *sql.DB, cfg cliparse.Config, username string, teamID *string) (accountID, token string) {
	t.Helper()

	accountID = uuid.NewString()

	var tid sql.NullString
	if teamID != nil {
		tid = sql.NullString{String: *teamID, Valid: true}
	}

	_, err := db.Exec(`
		INSERT INTO account (id, username, team_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, accountID, username, tid, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return accountID, auth.GenerateAccountToken(accountID, cfg.AuthTokenSalt)
}

// CreateTestEntry inserts a mood entry directly
func CreateTestEntry(t *testing.T, db *sql.DB, accountID, date string, level int) {
	t.Helper()

	now := time.Now()
	_, err := db.Exec(`
		INSERT INTO entry (account_id, entry_date, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, accountID, date, level, now, now)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
