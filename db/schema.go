// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to the dialect subset shared by PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Teams
CREATE TABLE IF NOT EXISTS team (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

-- Accounts
CREATE TABLE IF NOT EXISTS account (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    team_id TEXT REFERENCES team(id) ON DELETE SET NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_account_team_id ON account(team_id);

-- Mood entries
-- entry_date is an ISO YYYY-MM-DD string so equality queries behave the
-- same on both engines. The composite primary key is the one-entry-per-
-- account-per-date uniqueness slot; concurrent creates race on it, not
-- on an application-level check.
CREATE TABLE IF NOT EXISTS entry (
    account_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    entry_date TEXT NOT NULL,
    level INTEGER NOT NULL CHECK (level >= 1 AND level <= 5),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (account_id, entry_date)
);

CREATE INDEX IF NOT EXISTS idx_entry_date ON entry(entry_date);
`
