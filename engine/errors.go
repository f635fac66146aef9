// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

// Engine errors are returned as explicit values, never surfaced to users
// directly; the HTTP layer maps them to statuses.
var (
	ErrUnauthenticated   = errors.New("no active voter session")
	ErrVotingClosed      = errors.New("voting window is closed")
	ErrAlreadyVoted      = errors.New("already voted for this position")
	ErrUnknownCandidate  = errors.New("candidate not found or not active for position")
	ErrConflict          = errors.New("ballot number already taken for position")
	ErrNotFound          = errors.New("candidate not found")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrMalformedSession  = errors.New("malformed session descriptor")
	ErrMalformedImport   = errors.New("import file failed validation")
	ErrUnknownPosition   = errors.New("position is not on the ballot")
	ErrInvalidDuration   = errors.New("voting window duration must be positive")
)
