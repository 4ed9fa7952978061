// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/team-mood/cliparse"
	"github.com/danielhkuo/team-mood/middleware"
	"github.com/danielhkuo/team-mood/models"
	"github.com/danielhkuo/team-mood/stats"
	"github.com/danielhkuo/team-mood/store"
)

const dateLayout = "2006-01-02"

type EntryHandler struct {
	entries  *store.EntryStore
	accounts *store.AccountStore
	cfg      cliparse.Config
}

func NewEntryHandler(entries *store.EntryStore, accounts *store.AccountStore, cfg cliparse.Config) *EntryHandler {
	return &EntryHandler{entries: entries, accounts: accounts, cfg: cfg}
}

// List handles GET /entries?date=D
// Returns stats for the date (default today), scoped per the caller.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	account, ok := h.optionalAccount(w, r)
	if !ok {
		return
	}

	date := today()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := parseDate(d)
		if err != nil {
			middleware.DetailResponse(w, http.StatusBadRequest, "Invalid date provided.")
			return
		}
		date = parsed
	}

	h.respondWithStats(w, http.StatusOK, date, account)
}

// Create handles POST /entries
// Records the caller's rating for today and returns fresh stats.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	var req models.SubmitEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidLevel(req.Level) {
		middleware.FieldErrorResponse(w, "level", models.LevelValidationMessage)
		return
	}

	date := today()
	_, err := h.entries.Create(account.ID, date, req.Level)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEntry) {
			middleware.DetailResponse(w, http.StatusBadRequest,
				"You have already submitted your happiness level for today.")
			return
		}
		if errors.Is(err, store.ErrInvalidLevel) {
			middleware.FieldErrorResponse(w, "level", models.LevelValidationMessage)
			return
		}
		slog.Error("failed to create entry", "error", err, "account_id", account.ID)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry created", "account_id", account.ID, "date", date, "level", req.Level)

	h.respondWithStats(w, http.StatusCreated, date, account)
}

// Retrieve handles GET /entries/{date}
// Returns stats for the date, scoped per the caller. Empty dates still
// return 200 with an empty tally.
func (h *EntryHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	account, ok := h.optionalAccount(w, r)
	if !ok {
		return
	}

	date, err := parseDate(r.PathValue("date"))
	if err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid date provided.")
		return
	}

	h.respondWithStats(w, http.StatusOK, date, account)
}

// Replace handles PUT /entries/{date}
// Upserts the caller's entry for the date: replaces the level if one
// exists, creates it otherwise. Returns fresh stats either way.
func (h *EntryHandler) Replace(w http.ResponseWriter, r *http.Request) {
	account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	date, err := parseDate(r.PathValue("date"))
	if err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid date provided.")
		return
	}

	var req models.SubmitEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidLevel(req.Level) {
		middleware.FieldErrorResponse(w, "level", models.LevelValidationMessage)
		return
	}

	if _, err := h.entries.UpdateOrCreate(account.ID, date, req.Level); err != nil {
		slog.Error("failed to upsert entry", "error", err, "account_id", account.ID, "date", date)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry replaced", "account_id", account.ID, "date", date, "level", req.Level)

	h.respondWithStats(w, http.StatusOK, date, account)
}

// Patch handles PATCH /entries/{date}
// Updates the caller's existing entry. Unlike Replace it never creates:
// 404 if the caller has no entry for the date.
func (h *EntryHandler) Patch(w http.ResponseWriter, r *http.Request) {
	account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	date, err := parseDate(r.PathValue("date"))
	if err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid date provided.")
		return
	}

	var req models.SubmitEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidLevel(req.Level) {
		middleware.FieldErrorResponse(w, "level", models.LevelValidationMessage)
		return
	}

	if _, err := h.entries.PartialUpdate(account.ID, date, req.Level); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.DetailResponse(w, http.StatusNotFound, "Not found.")
			return
		}
		slog.Error("failed to patch entry", "error", err, "account_id", account.ID, "date", date)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry patched", "account_id", account.ID, "date", date, "level", req.Level)

	h.respondWithStats(w, http.StatusOK, date, account)
}

// Delete handles DELETE /entries/{date}
// Removes the caller's entry for the date. 204 on success, 404 if the
// caller had no entry.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	date, err := parseDate(r.PathValue("date"))
	if err != nil {
		middleware.DetailResponse(w, http.StatusBadRequest, "Invalid date provided.")
		return
	}

	if err := h.entries.Delete(account.ID, date); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.DetailResponse(w, http.StatusNotFound, "Not found.")
			return
		}
		slog.Error("failed to delete entry", "error", err, "account_id", account.ID, "date", date)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry deleted", "account_id", account.ID, "date", date)

	w.WriteHeader(http.StatusNoContent)
}

// respondWithStats aggregates the date's entries under the caller's
// scope and writes the result. A caller with a team affiliation sees
// only that team's entries; anonymous and unaffiliated callers see the
// cross-team pool.
func (h *EntryHandler) respondWithStats(w http.ResponseWriter, statusCode int, date string, account *models.Account) {
	var teamID *string
	if account != nil {
		teamID = account.TeamID
	}

	entries, err := h.entries.ListForDate(date, teamID)
	if err != nil {
		slog.Error("failed to list entries", "error", err, "date", date)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, statusCode, stats.Compute(entries))
}

// requireAccount resolves the caller's account from X-Auth-Token,
// writing a 403 and returning ok=false if the request is not
// authenticated. Write operations always derive entry identity from
// this account, never from the request payload.
func (h *EntryHandler) requireAccount(w http.ResponseWriter, r *http.Request) (*models.Account, bool) {
	account, err := authenticate(r, h.accounts, h.cfg.AuthTokenSalt)
	if err != nil {
		writeAuthError(w, err)
		return nil, false
	}
	if account == nil {
		middleware.DetailResponse(w, http.StatusForbidden, "Authentication credentials were not provided.")
		return nil, false
	}
	return account, true
}

// optionalAccount resolves the caller's account if a token is present.
// Anonymous requests proceed with a nil account (cross-team scope); a
// present-but-invalid token is still rejected.
func (h *EntryHandler) optionalAccount(w http.ResponseWriter, r *http.Request) (*models.Account, bool) {
	account, err := authenticate(r, h.accounts, h.cfg.AuthTokenSalt)
	if err != nil {
		writeAuthError(w, err)
		return nil, false
	}
	return account, true
}

func parseDate(d string) (string, error) {
	parsed, err := time.Parse(dateLayout, d)
	if err != nil {
		return "", err
	}
	return parsed.Format(dateLayout), nil
}

func today() string {
	return time.Now().Format(dateLayout)
}
