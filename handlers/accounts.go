// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/team-mood/auth"
	"github.com/danielhkuo/team-mood/cliparse"
	"github.com/danielhkuo/team-mood/middleware"
	"github.com/danielhkuo/team-mood/models"
	"github.com/danielhkuo/team-mood/store"
)

type AccountHandler struct {
	accounts *store.AccountStore
	cfg      cliparse.Config
}

func NewAccountHandler(accounts *store.AccountStore, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{accounts: accounts, cfg: cfg}
}

// CreateTeam handles POST /teams
func (h *AccountHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.FieldErrorResponse(w, "name", "This field may not be blank.")
		return
	}

	team, err := h.accounts.CreateTeam(req.Name)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateTeam) {
			middleware.DetailResponse(w, http.StatusConflict, "Team name already taken")
			return
		}
		slog.Error("failed to create team", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("team created", "team_id", team.ID, "name", team.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateTeamResponse{TeamID: team.ID})
}

// ListTeams handles GET /teams
func (h *AccountHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.accounts.ListTeams()
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, teams)
}

// Register handles POST /accounts
// Creates an account (optionally affiliated with a team) and returns
// the auth token the client must send on authenticated requests.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		middleware.FieldErrorResponse(w, "username", "This field may not be blank.")
		return
	}
	if len(req.Username) < 2 || len(req.Username) > 50 {
		middleware.FieldErrorResponse(w, "username", "Username must be 2-50 characters.")
		return
	}

	account, err := h.accounts.CreateAccount(req.Username, req.TeamID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			middleware.DetailResponse(w, http.StatusConflict, "Username already taken")
			return
		}
		if errors.Is(err, store.ErrUnknownTeam) {
			middleware.FieldErrorResponse(w, "team_id", "Unknown team.")
			return
		}
		slog.Error("failed to create account", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("account registered", "account_id", account.ID, "username", account.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateAccountResponse{
		AccountID: account.ID,
		Token:     auth.GenerateAccountToken(account.ID, h.cfg.AuthTokenSalt),
	})
}

// GetMe handles GET /accounts/me
// Returns the caller's account info, including team affiliation.
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	account, err := authenticate(r, h.accounts, h.cfg.AuthTokenSalt)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	if account == nil {
		middleware.DetailResponse(w, http.StatusForbidden, "Authentication credentials were not provided.")
		return
	}

	info := models.AccountInfoResponse{
		AccountID: account.ID,
		Username:  account.Username,
	}
	if account.TeamID != nil {
		team, err := h.accounts.FindTeam(*account.TeamID)
		if err != nil {
			slog.Error("failed to load team", "error", err, "team_id", *account.TeamID)
			middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		info.Team = &team
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// authenticate resolves the X-Auth-Token header to an account. A
// missing header yields (nil, nil): the request is anonymous. An
// invalid or unresolvable token is an error.
func authenticate(r *http.Request, accounts *store.AccountStore, salt string) (*models.Account, error) {
	token := r.Header.Get("X-Auth-Token")
	if token == "" {
		return nil, nil
	}

	accountID, err := auth.ParseAccountToken(token, salt)
	if err != nil {
		return nil, err
	}

	account, err := accounts.FindAccount(accountID)
	if err != nil {
		if errors.Is(err, store.ErrUnknownAccount) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return &account, nil
}

// writeAuthError maps authentication failures to responses: bad tokens
// are a 403 before any store operation runs, everything else is a
// database failure.
func writeAuthError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrInvalidToken) {
		middleware.DetailResponse(w, http.StatusForbidden, "Invalid authentication token.")
		return
	}
	slog.Error("failed to authenticate request", "error", err)
	middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
}
