// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Team Mood API server.

Team Mood is a small team happiness tracker: each member submits one
mood rating (1-5) per day, and the server answers with aggregate stats
(a per-level tally and an average) for that day, scoped to the
caller's team.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=happiness.db AUTH_TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - AUTH_TOKEN_SALT (--auth-salt): Secret for account token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

A .env file in the working directory is loaded at startup if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (entries, accounts, teams)
  - store: Entry and account repositories over database/sql
  - stats: Pure tally/average aggregation
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
