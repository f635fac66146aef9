// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"crypto/hmac"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/kiosk-vote/models"
)

// VerifyJuryPassword checks a password attempt against the shared jury
// secret in constant time. It does not create a session; a successful check
// is the gate through which the handler creates the next voter session.
func (e *Engine) VerifyJuryPassword(candidate string) bool {
	return hmac.Equal([]byte(candidate), []byte(e.cfg.JuryPassword))
}

// VerifyAdminCredentials checks the administrator credential pair. A bcrypt
// hash is preferred when configured; the plaintext comparison exists for
// local development setups.
func (e *Engine) VerifyAdminCredentials(user, pass string) bool {
	if !hmac.Equal([]byte(user), []byte(e.cfg.AdminUser)) {
		return false
	}
	if e.cfg.AdminPassHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(e.cfg.AdminPassHash), []byte(pass)) == nil
	}
	return hmac.Equal([]byte(pass), []byte(e.cfg.AdminPass))
}

// VoterDescriptor builds a well-formed voter session descriptor with every
// required position initialized to false.
func (e *Engine) VoterDescriptor() models.SessionDescriptor {
	hasVoted := make(map[string]bool, len(e.cfg.Positions))
	for _, p := range e.cfg.Positions {
		hasVoted[p] = false
	}
	return models.SessionDescriptor{Kind: models.SessionVoter, HasVoted: hasVoted}
}

// Login transitions Anonymous→{Voter|Admin}. Only one session is live at a
// time: a new login replaces whatever was there. Replacing an unfinished
// voter session is intended kiosk behavior (the jury vouched for the person
// standing at the machine), but it is logged as a forced replacement because
// it abandons a partial ballot.
func (e *Engine) Login(desc models.SessionDescriptor) (models.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := models.Session{
		ID:        uuid.NewString(),
		Kind:      desc.Kind,
		CreatedAt: e.now(),
	}

	switch desc.Kind {
	case models.SessionVoter:
		if len(desc.HasVoted) != len(e.cfg.Positions) {
			return models.Session{}, ErrMalformedSession
		}
		for _, p := range e.cfg.Positions {
			if _, ok := desc.HasVoted[p]; !ok {
				return models.Session{}, ErrMalformedSession
			}
		}
		s.HasVoted = copyVotedMap(desc.HasVoted)
		s.Temporary = true
		// The counter advances per voter session created, not per login
		// attempt, so voter numbers stay sequential across failed attempts.
		e.voterSeq++
		s.VoterNumber = e.voterSeq
	case models.SessionAdmin:
		// no ballot state
	default:
		return models.Session{}, ErrMalformedSession
	}

	if prev := e.session; prev != nil {
		progress := 0
		for _, done := range prev.HasVoted {
			if done {
				progress++
			}
		}
		slog.Warn("live session replaced",
			"reason", "force_replace",
			"prev_kind", prev.Kind,
			"prev_voter_number", prev.VoterNumber,
			"prev_positions_voted", progress,
		)
	}

	e.session = &s
	slog.Info("session started", "kind", s.Kind, "voter_number", s.VoterNumber)
	e.broadcast("session", sessionViewOf(&s))

	// The caller gets its own copy of the ballot map so the live session's
	// state can only change through engine commands.
	out := s
	if s.HasVoted != nil {
		out.HasVoted = copyVotedMap(s.HasVoted)
	}
	return out, nil
}

// Logout returns the kiosk to the anonymous state. Votes already counted
// stay counted.
func (e *Engine) Logout() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		slog.Info("session ended", "kind", e.session.Kind)
	}
	e.session = nil
	e.broadcast("session", models.SessionView{Kind: models.SessionAnonymous})
}

// CurrentSession returns the live session read model.
func (e *Engine) CurrentSession() models.SessionView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sessionViewOf(e.session)
}

// SessionAlive reports whether the given session id is the live session with
// the given kind. The HTTP layer uses it to bind bearer tokens to the engine.
func (e *Engine) SessionAlive(sessionID, kind string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil && e.session.ID == sessionID && e.session.Kind == kind
}

func sessionViewOf(s *models.Session) models.SessionView {
	if s == nil {
		return models.SessionView{Kind: models.SessionAnonymous}
	}
	view := models.SessionView{Kind: s.Kind, VoterNumber: s.VoterNumber}
	if s.HasVoted != nil {
		view.HasVoted = copyVotedMap(s.HasVoted)
	}
	return view
}
