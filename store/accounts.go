// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/team-mood/models"
)

var (
	// ErrDuplicateUsername means the username is already registered.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrDuplicateTeam means a team with that name already exists.
	ErrDuplicateTeam = errors.New("team name already taken")

	// ErrUnknownTeam means the referenced team does not exist.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrUnknownAccount means no account exists for the given ID.
	ErrUnknownAccount = errors.New("unknown account")
)

// AccountStore is the repository for accounts and teams.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// CreateTeam inserts a new team with a generated ID.
func (s *AccountStore) CreateTeam(name string) (models.Team, error) {
	team := models.Team{ID: uuid.NewString(), Name: name}

	_, err := s.db.Exec(`
		INSERT INTO team (id, name, created_at)
		VALUES ($1, $2, $3)
	`, team.ID, team.Name, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			return models.Team{}, ErrDuplicateTeam
		}
		return models.Team{}, fmt.Errorf("failed to insert team: %w", err)
	}

	return team, nil
}

// ListTeams returns all teams ordered by name.
func (s *AccountStore) ListTeams() ([]models.Team, error) {
	rows, err := s.db.Query(`SELECT id, name FROM team ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}

	return teams, nil
}

// FindTeam returns the team for the given ID, or ErrUnknownTeam.
func (s *AccountStore) FindTeam(teamID string) (models.Team, error) {
	var team models.Team
	err := s.db.QueryRow(`
		SELECT id, name FROM team WHERE id = $1
	`, teamID).Scan(&team.ID, &team.Name)

	if err == sql.ErrNoRows {
		return models.Team{}, ErrUnknownTeam
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to query team: %w", err)
	}

	return team, nil
}

// CreateAccount inserts a new account with a generated ID. A non-nil
// teamID must reference an existing team.
func (s *AccountStore) CreateAccount(username string, teamID *string) (models.Account, error) {
	if teamID != nil {
		if _, err := s.FindTeam(*teamID); err != nil {
			return models.Account{}, err
		}
	}

	account := models.Account{ID: uuid.NewString(), Username: username, TeamID: teamID}

	var tid sql.NullString
	if teamID != nil {
		tid = sql.NullString{String: *teamID, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO account (id, username, team_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, account.ID, account.Username, tid, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrDuplicateUsername
		}
		return models.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	return account, nil
}

// FindAccount returns the account for the given ID, or ErrUnknownAccount.
func (s *AccountStore) FindAccount(accountID string) (models.Account, error) {
	var account models.Account
	var teamID sql.NullString
	err := s.db.QueryRow(`
		SELECT id, username, team_id FROM account WHERE id = $1
	`, accountID).Scan(&account.ID, &account.Username, &teamID)

	if err == sql.ErrNoRows {
		return models.Account{}, ErrUnknownAccount
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	if teamID.Valid {
		account.TeamID = &teamID.String
	}

	return account, nil
}
