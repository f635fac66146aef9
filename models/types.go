package models

import "time"

// Elected positions a candidate can run for. The set is configurable at
// startup; these are the defaults for a school government election.
const (
	PositionPersoneria  = "personeria"
	PositionContraloria = "contraloria"
)

// DefaultPositions is the required position set when none is configured.
var DefaultPositions = []string{PositionPersoneria, PositionContraloria}

// DefaultPhotoURL is used when a candidate is registered without a photo.
const DefaultPhotoURL = "/img/candidate-placeholder.png"

// Session kinds
const (
	SessionAnonymous = "anonymous"
	SessionVoter     = "voter"
	SessionAdmin     = "admin"
)

// Window severity levels, for display only
const (
	SeverityOK       = "ok"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Request types

type JuryLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddCandidateRequest struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// CandidatePatch is a partial update; nil fields are left unchanged.
type CandidatePatch struct {
	Name     *string `json:"name,omitempty"`
	Number   *int    `json:"number,omitempty"`
	Position *string `json:"position,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
	Position    string `json:"position"`
}

type SetWindowRequest struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Response types

type LoginResponse struct {
	Token   string      `json:"token"`
	Session SessionView `json:"session"`
}

type CastVoteResponse struct {
	Candidate      Candidate       `json:"candidate"`
	BallotComplete bool            `json:"ballot_complete"`
	HasVoted       map[string]bool `json:"has_voted"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Domain types

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	PhotoURL  string    `json:"photo_url"`
	Votes     int       `json:"votes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionDescriptor is the input to the login transition. Voter descriptors
// must carry a hasVoted entry for every required position.
type SessionDescriptor struct {
	Kind     string          `json:"kind"`
	HasVoted map[string]bool `json:"has_voted,omitempty"`
}

// Session is the single live identity on the kiosk. Voter sessions are
// anonymous and single-use; the sequential number exists only so poll
// workers can match the on-screen voter to their paper log.
type Session struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	VoterNumber int             `json:"voter_number,omitempty"`
	HasVoted    map[string]bool `json:"has_voted,omitempty"`
	Temporary   bool            `json:"temporary"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SessionView is the read model exposed to the presentation layer.
// The anonymous state is {Kind: "anonymous"}.
type SessionView struct {
	Kind        string          `json:"kind"`
	VoterNumber int             `json:"voter_number,omitempty"`
	HasVoted    map[string]bool `json:"has_voted,omitempty"`
}

// WindowStatus is the observable state of the voting window clock.
type WindowStatus struct {
	Open     bool   `json:"open"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Seconds  int    `json:"seconds"`
	Severity string `json:"severity"`
}

// CandidateFilter narrows and orders a registry listing.
type CandidateFilter struct {
	Position string // empty = all positions
	Active   *bool  // nil = both
	SortBy   string // "name", "number" or "votes"; empty = number
}

// Results aggregation

type CandidateTally struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Number  int     `json:"number"`
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"`
}

type PositionTally struct {
	Position   string           `json:"position"`
	TotalVotes int              `json:"total_votes"`
	Candidates []CandidateTally `json:"candidates"`
	Winner     *CandidateTally  `json:"winner,omitempty"`
}

// Persistence

// Snapshot is the durable representation of the engine state.
type Snapshot struct {
	Candidates   []Candidate `json:"candidates"`
	IsVotingOpen bool        `json:"is_voting_open"`
	SavedAt      time.Time   `json:"saved_at"`
}

// ExportFile is the admin-facing import/export interchange format.
type ExportFile struct {
	Candidates   []Candidate `json:"candidates"`
	IsVotingOpen bool        `json:"isVotingOpen"`
	ExportDate   time.Time   `json:"exportDate"`
}

// WSEvent is a message pushed over the live feed.
type WSEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
