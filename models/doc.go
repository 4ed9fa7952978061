// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitEntryRequest: level
  - CreateTeamRequest: name
  - CreateAccountRequest: username, team_id

# Response Types

Types for JSON responses:

  - StatsResult: tally, average
  - CreateTeamResponse: team_id
  - CreateAccountResponse: account_id, token
  - AccountInfoResponse: account_id, username, team
  - DetailResponse: detail
  - FieldErrors: per-field validation messages

# Domain Types

Internal data structures:

  - Entry: one mood rating per account per date
  - Account: user with optional team affiliation
  - Team: named grouping used as an aggregation scope

# Error Body Shapes

Field validation failures are keyed by field:

	{"level": ["Happiness level must be between 1 and 5"]}

All other errors carry a detail string:

	{"detail": "Not found."}

# Constants

Level bounds:

	MinLevel = 1
	MaxLevel = 5
*/
package models
