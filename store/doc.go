// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store contains the repositories over database/sql.

# Entry Store

EntryStore owns mood entry persistence:

	entries := store.NewEntryStore(db)
	entry, err := entries.Create(accountID, "2026-08-28", 4)

Operations:

  - Find: point lookup by (account, date)
  - ListForDate: all entries for a date, optionally team-filtered
  - Create: insert, failing on a duplicate (account, date)
  - UpdateOrCreate: upsert via ON CONFLICT (PUT semantics)
  - PartialUpdate: update-only, never creates (PATCH semantics)
  - Delete: remove, failing if absent

The asymmetry between UpdateOrCreate and PartialUpdate is deliberate
and must not be collapsed: a full replace may create the entry, a
partial patch may not.

# Uniqueness

The one-entry-per-account-per-date rule is the entry table's composite
primary key. Create never checks before inserting; it inserts and maps
the constraint violation to ErrDuplicateEntry. That makes the losing
side of a concurrent double-submit fail cleanly instead of producing a
second row.

# Errors

Sentinel errors for expected outcomes:

	store.ErrNotFound
	store.ErrDuplicateEntry
	store.ErrInvalidLevel
	store.ErrDuplicateUsername
	store.ErrDuplicateTeam
	store.ErrUnknownTeam
	store.ErrUnknownAccount

Anything else is an unexpected database failure, wrapped with context.

# Account Store

AccountStore owns accounts and teams: CreateTeam, ListTeams, FindTeam,
CreateAccount, FindAccount. Accounts may be unaffiliated (nil team).
*/
package store
