// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/team-mood/models"
)

var (
	// ErrNotFound means no entry exists for the (account, date) pair.
	ErrNotFound = errors.New("entry not found")

	// ErrDuplicateEntry means an entry already exists for the (account, date)
	// pair. Surfaced by the storage-level uniqueness constraint, so two
	// concurrent creates can never both succeed.
	ErrDuplicateEntry = errors.New("entry already exists for this date")

	// ErrInvalidLevel means the level is outside the 1-5 range.
	ErrInvalidLevel = errors.New("happiness level out of range")
)

// EntryStore is the repository for mood entries. All uniqueness
// guarantees live in the entry table's composite primary key; the store
// only translates constraint violations into domain errors.
type EntryStore struct {
	db *sql.DB
}

func NewEntryStore(db *sql.DB) *EntryStore {
	return &EntryStore{db: db}
}

// Find returns the entry for (accountID, date), or ErrNotFound.
func (s *EntryStore) Find(accountID, date string) (models.Entry, error) {
	var entry models.Entry
	err := s.db.QueryRow(`
		SELECT account_id, entry_date, level
		FROM entry
		WHERE account_id = $1 AND entry_date = $2
	`, accountID, date).Scan(&entry.AccountID, &entry.Date, &entry.Level)

	if err == sql.ErrNoRows {
		return models.Entry{}, ErrNotFound
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to query entry: %w", err)
	}

	return entry, nil
}

// ListForDate returns all entries for an exact date. A non-nil teamID
// restricts the result to entries whose owning account belongs to that
// team; nil returns the cross-team view.
func (s *EntryStore) ListForDate(date string, teamID *string) ([]models.Entry, error) {
	query := `
		SELECT e.account_id, e.entry_date, e.level
		FROM entry e
		WHERE e.entry_date = $1
		ORDER BY e.level, e.account_id
	`
	args := []interface{}{date}

	if teamID != nil {
		query = `
			SELECT e.account_id, e.entry_date, e.level
			FROM entry e
			JOIN account a ON e.account_id = a.id
			WHERE e.entry_date = $1 AND a.team_id = $2
			ORDER BY e.level, e.account_id
		`
		args = append(args, *teamID)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(&entry.AccountID, &entry.Date, &entry.Level); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

// Create inserts a new entry. Returns ErrDuplicateEntry if one already
// exists for (accountID, date) - including when a concurrent create won
// the race - and ErrInvalidLevel for levels outside 1-5.
func (s *EntryStore) Create(accountID, date string, level int) (models.Entry, error) {
	if !models.ValidLevel(level) {
		return models.Entry{}, ErrInvalidLevel
	}

	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO entry (account_id, entry_date, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, accountID, date, level, now, now)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Entry{}, ErrDuplicateEntry
		}
		return models.Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}

	return models.Entry{AccountID: accountID, Date: date, Level: level}, nil
}

// UpdateOrCreate upserts the entry for (accountID, date). The conflict
// target is the composite primary key, so the operation is atomic on
// both engines.
func (s *EntryStore) UpdateOrCreate(accountID, date string, level int) (models.Entry, error) {
	if !models.ValidLevel(level) {
		return models.Entry{}, ErrInvalidLevel
	}

	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO entry (account_id, entry_date, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, entry_date) DO UPDATE SET
			level = EXCLUDED.level,
			updated_at = EXCLUDED.updated_at
	`, accountID, date, level, now, now)

	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to upsert entry: %w", err)
	}

	return models.Entry{AccountID: accountID, Date: date, Level: level}, nil
}

// PartialUpdate mutates an existing entry's level. Unlike
// UpdateOrCreate it never creates: ErrNotFound if no entry exists.
func (s *EntryStore) PartialUpdate(accountID, date string, level int) (models.Entry, error) {
	if !models.ValidLevel(level) {
		return models.Entry{}, ErrInvalidLevel
	}

	result, err := s.db.Exec(`
		UPDATE entry
		SET level = $1, updated_at = $2
		WHERE account_id = $3 AND entry_date = $4
	`, level, time.Now(), accountID, date)

	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return models.Entry{}, ErrNotFound
	}

	return models.Entry{AccountID: accountID, Date: date, Level: level}, nil
}

// Delete removes the entry for (accountID, date), or returns ErrNotFound.
func (s *EntryStore) Delete(accountID, date string) error {
	result, err := s.db.Exec(`
		DELETE FROM entry WHERE account_id = $1 AND entry_date = $2
	`, accountID, date)

	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// isUniqueViolation recognizes uniqueness constraint failures from both
// supported drivers (lib/pq and modernc sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
