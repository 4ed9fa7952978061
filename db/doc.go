// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - team: Team names
  - account: Users with an optional team affiliation
  - entry: One mood rating per account per date

# Relationships

	team 1──* account
	account 1──* entry

Deleting an account cascades to its entries; deleting a team leaves its
accounts unaffiliated (team_id set to NULL).

# Constraints

  - entry has PRIMARY KEY (account_id, entry_date): at most one rating
    per account per date, enforced by the engine so concurrent inserts
    cannot produce duplicates
  - entry.level is CHECKed to the range 1-5
  - team.name and account.username are UNIQUE

# Indexes

Performance indexes on:

  - account.team_id
  - entry.entry_date
*/
package db
