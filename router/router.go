// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/team-mood/cliparse"
	"github.com/danielhkuo/team-mood/handlers"
	"github.com/danielhkuo/team-mood/middleware"
	"github.com/danielhkuo/team-mood/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize repositories and handlers
	entries := store.NewEntryStore(db)
	accounts := store.NewAccountStore(db)
	entryHandler := handlers.NewEntryHandler(entries, accounts, cfg)
	accountHandler := handlers.NewAccountHandler(accounts, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Mood entries (stats reads are public, writes are owner-only)
	mux.HandleFunc("GET /entries", middleware.WithLogging(entryHandler.List))
	mux.HandleFunc("POST /entries", middleware.WithLogging(entryHandler.Create))
	mux.HandleFunc("GET /entries/{date}", middleware.WithLogging(entryHandler.Retrieve))
	mux.HandleFunc("PUT /entries/{date}", middleware.WithLogging(entryHandler.Replace))
	mux.HandleFunc("PATCH /entries/{date}", middleware.WithLogging(entryHandler.Patch))
	mux.HandleFunc("DELETE /entries/{date}", middleware.WithLogging(entryHandler.Delete))

	// Teams and accounts
	mux.HandleFunc("POST /teams", middleware.WithLogging(accountHandler.CreateTeam))
	mux.HandleFunc("GET /teams", middleware.WithLogging(accountHandler.ListTeams))
	mux.HandleFunc("POST /accounts", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("GET /accounts/me", middleware.WithLogging(accountHandler.GetMe))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("team-mood API v1"))
	})

	return mux
}
