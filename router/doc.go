// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Team Mood API.

# Routing

NewRouter wires repositories, handlers, and routes into a ServeMux:

	mux := router.NewRouter(db, cfg)

Uses Go 1.22+ method-based routing with path parameters:

	GET    /entries          → stats for today
	POST   /entries          → submit today's rating
	GET    /entries/{date}   → stats for a date
	PUT    /entries/{date}   → replace own rating
	PATCH  /entries/{date}   → update own rating
	DELETE /entries/{date}   → delete own rating
	POST   /teams            → create team
	GET    /teams            → list teams
	POST   /accounts         → register account
	GET    /accounts/me      → account info
	GET    /health           → health check
	GET    /                 → API identifier

All entry/account routes are wrapped with request logging middleware.
*/
package router
