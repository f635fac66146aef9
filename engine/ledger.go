// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"
	"time"

	"github.com/danielhkuo/kiosk-vote/models"
)

// CastVote applies one vote from the live voter session. The whole
// check-and-set runs under the engine mutex, so a double-click that races
// two casts for the same position resolves to exactly one increment and one
// ErrAlreadyVoted: hasVoted transitions false→true exactly once.
//
// Check order: window closed, then authentication, then the hasVoted gate,
// then candidate resolution. A window close that lands after the checks pass
// does not void this vote; closure applies to subsequent calls only.
func (e *Engine) CastVote(sessionID, candidateID, position string) (models.CastVoteResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.openLocked() {
		return models.CastVoteResponse{}, ErrVotingClosed
	}

	s := e.session
	if s == nil || s.Kind != models.SessionVoter || s.ID != sessionID {
		return models.CastVoteResponse{}, ErrUnauthenticated
	}

	voted, required := s.HasVoted[position]
	if !required {
		return models.CastVoteResponse{}, ErrUnknownPosition
	}
	if voted {
		return models.CastVoteResponse{}, ErrAlreadyVoted
	}

	c, ok := e.candidates[candidateID]
	if !ok || !c.Active || c.Position != position {
		return models.CastVoteResponse{}, ErrUnknownCandidate
	}

	// The transaction: count +1 and gate flip together, under the lock.
	c.Votes++
	s.HasVoted[position] = true

	complete := true
	for _, done := range s.HasVoted {
		if !done {
			complete = false
			break
		}
	}

	slog.Info("vote cast",
		"voter_number", s.VoterNumber,
		"position", position,
		"candidate_id", candidateID,
		"ballot_complete", complete,
	)

	e.persistLocked()
	e.broadcast("tally", e.talliesLocked())

	if complete {
		// Free the kiosk for the next voter after a short delay. The session
		// id guard makes a stale timer a no-op if a new login already
		// replaced this session.
		sid := s.ID
		time.AfterFunc(e.retireDelay, func() { e.retireVoter(sid) })
	}

	resp := models.CastVoteResponse{
		Candidate:      *c,
		BallotComplete: complete,
		HasVoted:       copyVotedMap(s.HasVoted),
	}
	return resp, nil
}

// retireVoter logs out a completed voter session. No-op unless the live
// session still is that voter.
func (e *Engine) retireVoter(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.Kind != models.SessionVoter || s.ID != sessionID {
		return
	}
	for _, done := range s.HasVoted {
		if !done {
			return
		}
	}

	slog.Info("voter session retired", "voter_number", s.VoterNumber)
	e.session = nil
	e.broadcast("session", models.SessionView{Kind: models.SessionAnonymous})
}

func copyVotedMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
