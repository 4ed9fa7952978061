// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Team Mood API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - EntryHandler: Mood entry CRUD and stats retrieval
  - AccountHandler: Team and account registration, account info

Handlers are created via constructor functions that accept repositories
and Config:

	entryHandler := handlers.NewEntryHandler(entries, accounts, cfg)

# Entry Flow

Every entry operation answers with the aggregate stats for the target
date, recomputed after the write:

	GET    /entries?date=D   → List (stats, date defaults to today)
	POST   /entries          → Create (today's rating, 201)
	GET    /entries/{date}   → Retrieve (stats for the date)
	PUT    /entries/{date}   → Replace (upsert own entry)
	PATCH  /entries/{date}   → Patch (update own entry, 404 if absent)
	DELETE /entries/{date}   → Delete (204, 404 if absent)

Writes require the X-Auth-Token header and always target the caller's
own entry. Reads are open; authenticated callers with a team see only
their team's entries, everyone else sees the cross-team pool.

# Account Flow

	POST /teams        → CreateTeam (returns team_id)
	GET  /teams        → ListTeams
	POST /accounts     → Register (returns account_id and token)
	GET  /accounts/me  → GetMe

# Error Bodies

Validation failures are keyed by field, everything else is a detail
string (see package models). Store sentinel errors are translated here:
ErrDuplicateEntry → 400, ErrNotFound → 404, missing/invalid token → 403.
*/
package handlers
