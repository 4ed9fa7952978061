package models

// Happiness level bounds
const (
	MinLevel = 1
	MaxLevel = 5
)

// LevelValidationMessage is the field-level message returned when a
// submitted level falls outside the 1-5 range.
const LevelValidationMessage = "Happiness level must be between 1 and 5"

// Request types

type SubmitEntryRequest struct {
	Level int `json:"level"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type CreateAccountRequest struct {
	Username string  `json:"username"`
	TeamID   *string `json:"team_id,omitempty"`
}

// Response types

type CreateTeamResponse struct {
	TeamID string `json:"team_id"`
}

type CreateAccountResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
}

type AccountInfoResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Team      *Team  `json:"team,omitempty"`
}

// DetailResponse is the generic error body: {"detail": "..."}.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldErrors is the validation error body, keyed by field name:
// {"level": ["Happiness level must be between 1 and 5"]}.
type FieldErrors map[string][]string

// Domain types

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Account struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	TeamID   *string `json:"team_id,omitempty"`
}

// Entry is one account's mood rating for one calendar date.
// Date is day-granular, formatted YYYY-MM-DD.
type Entry struct {
	AccountID string `json:"-"` // Never expose in JSON
	Date      string `json:"date"`
	Level     int    `json:"level"`
}

// StatsResult is the aggregate view of a day's entries. Tally maps
// string-encoded levels to counts; only levels that occur appear.
// Average is nil (JSON null) when there are no entries.
type StatsResult struct {
	Tally   map[string]int `json:"tally"`
	Average *float64       `json:"average"`
}

// ValidLevel reports whether level is within the accepted 1-5 range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
