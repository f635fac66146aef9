// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/kiosk-vote/models"
)

// AddCandidate registers a new candidate. The (position, number) pair must
// be unique among active candidates.
func (e *Engine) AddCandidate(req models.AddCandidateRequest) (models.Candidate, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	position := strings.ToLower(strings.TrimSpace(req.Position))
	if !e.knownPosition(position) {
		return models.Candidate{}, ErrUnknownPosition
	}
	if e.numberTakenLocked(position, req.Number, "") {
		return models.Candidate{}, ErrConflict
	}

	photo := req.PhotoURL
	if photo == "" {
		photo = models.DefaultPhotoURL
	}

	c := &models.Candidate{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Number:    req.Number,
		Position:  position,
		PhotoURL:  photo,
		Active:    true,
		CreatedAt: e.now(),
	}
	e.candidates[c.ID] = c

	slog.Info("candidate added", "candidate_id", c.ID, "position", c.Position, "number", c.Number)
	e.persistLocked()
	e.broadcast("tally", e.talliesLocked())

	return *c, nil
}

// UpdateCandidate applies a partial update, re-validating (position, number)
// uniqueness when either field changes.
func (e *Engine) UpdateCandidate(id string, patch models.CandidatePatch) (models.Candidate, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.candidates[id]
	if !ok {
		return models.Candidate{}, ErrNotFound
	}

	position := c.Position
	if patch.Position != nil {
		position = strings.ToLower(strings.TrimSpace(*patch.Position))
		if !e.knownPosition(position) {
			return models.Candidate{}, ErrUnknownPosition
		}
	}
	number := c.Number
	if patch.Number != nil {
		number = *patch.Number
	}
	active := c.Active
	if patch.Active != nil {
		active = *patch.Active
	}
	if active && e.numberTakenLocked(position, number, id) {
		return models.Candidate{}, ErrConflict
	}

	c.Position = position
	c.Number = number
	c.Active = active
	if patch.Name != nil {
		c.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.PhotoURL != nil {
		c.PhotoURL = *patch.PhotoURL
		if c.PhotoURL == "" {
			c.PhotoURL = models.DefaultPhotoURL
		}
	}

	slog.Info("candidate updated", "candidate_id", id)
	e.persistLocked()
	e.broadcast("tally", e.talliesLocked())

	return *c, nil
}

// RemoveCandidate hard-deletes a candidate. Votes already counted for it are
// gone with it; a vote in flight for the removed id fails UnknownCandidate
// at cast time.
func (e *Engine) RemoveCandidate(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.candidates[id]; !ok {
		return ErrNotFound
	}
	delete(e.candidates, id)

	slog.Info("candidate removed", "candidate_id", id)
	e.persistLocked()
	e.broadcast("tally", e.talliesLocked())

	return nil
}

// ListCandidates returns a filtered, sorted copy of the registry. Pure read.
func (e *Engine) ListCandidates(filter models.CandidateFilter) []models.Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Candidate, 0, len(e.candidates))
	for _, c := range e.candidates {
		if filter.Position != "" && c.Position != filter.Position {
			continue
		}
		if filter.Active != nil && c.Active != *filter.Active {
			continue
		}
		out = append(out, *c)
	}

	sort.Slice(out, func(i, j int) bool {
		switch filter.SortBy {
		case "name":
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		case "votes":
			if out[i].Votes != out[j].Votes {
				return out[i].Votes > out[j].Votes
			}
			return out[i].Number < out[j].Number
		default:
			if out[i].Position != out[j].Position {
				return out[i].Position < out[j].Position
			}
			return out[i].Number < out[j].Number
		}
	})

	return out
}

// ClearAll wipes the registry and the persisted snapshot. The handler layer
// demands explicit confirmation before calling this.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.candidates = make(map[string]*models.Candidate)
	slog.Warn("registry cleared")

	if e.persister != nil {
		e.enqueueSave(saveWork{clear: true})
	}
	e.broadcast("tally", e.talliesLocked())
}

// ResetVotes zeroes every vote count, keeping the candidate roster. Admin
// bulk operation; the only path that ever decrements a count.
func (e *Engine) ResetVotes() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, c := range e.candidates {
		c.Votes = 0
	}
	slog.Warn("vote counts reset")
	e.persistLocked()
	e.broadcast("tally", e.talliesLocked())
}

// ImportCandidates merges an export file into the registry. Existing
// candidates are never overwritten: an incoming candidate whose id or
// (position, number) pair is already present is skipped.
func (e *Engine) ImportCandidates(incoming []models.Candidate) (imported, skipped int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, c := range incoming {
		if c.Name == "" || c.Number <= 0 || !e.knownPosition(c.Position) || c.Votes < 0 {
			return 0, 0, ErrMalformedImport
		}
	}

	for _, c := range incoming {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if _, exists := e.candidates[c.ID]; exists {
			skipped++
			continue
		}
		if c.Active && e.numberTakenLocked(c.Position, c.Number, c.ID) {
			skipped++
			continue
		}
		if c.PhotoURL == "" {
			c.PhotoURL = models.DefaultPhotoURL
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = e.now()
		}
		stored := c
		e.candidates[stored.ID] = &stored
		imported++
	}

	slog.Info("candidates imported", "imported", imported, "skipped", skipped)
	e.persistLocked()
	e.broadcast("tally", e.talliesLocked())

	return imported, skipped, nil
}

// SeedCandidates merges a remote candidate collection fetched at startup.
// Local state is authoritative: a remote candidate whose id is already known
// locally is dropped, whatever its vote count says. Deterministic merge, no
// error surface; malformed remote entries are skipped.
func (e *Engine) SeedCandidates(remote []models.Candidate) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, c := range remote {
		if c.ID == "" || c.Name == "" || !e.knownPosition(c.Position) {
			continue
		}
		if _, exists := e.candidates[c.ID]; exists {
			continue
		}
		if c.Active && e.numberTakenLocked(c.Position, c.Number, c.ID) {
			continue
		}
		if c.PhotoURL == "" {
			c.PhotoURL = models.DefaultPhotoURL
		}
		stored := c
		e.candidates[stored.ID] = &stored
		added++
	}

	if added > 0 {
		slog.Info("remote seed merged", "added", added)
		e.persistLocked()
	}
	return added
}

// Tallies aggregates vote counts per position for the results view.
func (e *Engine) Tallies() []models.PositionTally {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.talliesLocked()
}

func (e *Engine) talliesLocked() []models.PositionTally {
	out := make([]models.PositionTally, 0, len(e.cfg.Positions))
	for _, pos := range e.cfg.Positions {
		tally := models.PositionTally{Position: pos, Candidates: []models.CandidateTally{}}
		for _, c := range e.candidates {
			if c.Position != pos || !c.Active {
				continue
			}
			tally.TotalVotes += c.Votes
			tally.Candidates = append(tally.Candidates, models.CandidateTally{
				ID: c.ID, Name: c.Name, Number: c.Number, Votes: c.Votes,
			})
		}
		sort.Slice(tally.Candidates, func(i, j int) bool {
			if tally.Candidates[i].Votes != tally.Candidates[j].Votes {
				return tally.Candidates[i].Votes > tally.Candidates[j].Votes
			}
			return tally.Candidates[i].Number < tally.Candidates[j].Number
		})
		for i := range tally.Candidates {
			if tally.TotalVotes > 0 {
				tally.Candidates[i].Percent = float64(tally.Candidates[i].Votes) / float64(tally.TotalVotes) * 100
			}
		}
		if len(tally.Candidates) > 0 && tally.Candidates[0].Votes > 0 {
			w := tally.Candidates[0]
			tally.Winner = &w
		}
		out = append(out, tally)
	}
	return out
}

func (e *Engine) knownPosition(position string) bool {
	for _, p := range e.cfg.Positions {
		if p == position {
			return true
		}
	}
	return false
}

// numberTakenLocked reports whether an active candidate other than excludeID
// already holds (position, number). Caller must hold e.mu.
func (e *Engine) numberTakenLocked(position string, number int, excludeID string) bool {
	for _, c := range e.candidates {
		if c.ID != excludeID && c.Active && c.Position == position && c.Number == number {
			return true
		}
	}
	return false
}
