// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/models"
)

// Persister mirrors engine state to durable storage. Saves are best-effort:
// the engine never blocks or rolls back an in-memory mutation on a storage
// failure.
type Persister interface {
	SaveSnapshot(snap models.Snapshot) error
	Clear() error
}

// Notifier receives state-change events for the live feed. May be nil.
type Notifier interface {
	Broadcast(event string, payload any)
}

// Engine owns all mutable kiosk state: the candidate registry, the single
// live session, the voter counter and the voting window clock. Every command
// and query goes through it; nothing outside the engine mutates this state.
//
// Handlers run on concurrent goroutines, so the check-and-set sequences the
// ledger depends on (hasVoted gating, uniqueness checks, the one-time window
// close) all execute under one mutex.
type Engine struct {
	mu  sync.Mutex
	cfg cliparse.Config

	candidates map[string]*models.Candidate

	session  *models.Session
	voterSeq int

	open     bool
	deadline time.Time
	duration time.Duration

	// now is swappable so clock behavior is testable without waiting.
	now         func() time.Time
	retireDelay time.Duration

	persister Persister
	saves     chan saveWork
	notifier  Notifier
}

// saveWork is one queued storage operation: a snapshot save or the
// destructive clear.
type saveWork struct {
	snap  models.Snapshot
	clear bool
}

// New creates an engine with an empty registry and a closed voting window.
// Call Restore to load a persisted snapshot before serving traffic.
func New(cfg cliparse.Config, p Persister) *Engine {
	e := &Engine{
		cfg:         cfg,
		candidates:  make(map[string]*models.Candidate),
		duration:    time.Duration(cfg.VotingHours)*time.Hour + time.Duration(cfg.VotingMinutes)*time.Minute,
		now:         time.Now,
		retireDelay: 2 * time.Second,
		persister:   p,
	}
	if p != nil {
		e.saves = make(chan saveWork, 1)
		go e.saveLoop()
	}
	return e
}

// SetNotifier attaches the live-feed hub. Must be called before serving.
func (e *Engine) SetNotifier(n Notifier) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notifier = n
}

// Positions returns the configured required position set.
func (e *Engine) Positions() []string {
	return e.cfg.Positions
}

// Restore replaces in-memory state with a persisted snapshot. Used once at
// startup; a snapshot never drops candidates because it replaces an empty
// registry. A window that was open when the snapshot was taken reopens with
// the full configured duration, since the original deadline is not stored.
func (e *Engine) Restore(snap models.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range snap.Candidates {
		c := snap.Candidates[i]
		if c.ID == "" {
			continue
		}
		if c.PhotoURL == "" {
			c.PhotoURL = models.DefaultPhotoURL
		}
		e.candidates[c.ID] = &c
	}
	if snap.IsVotingOpen {
		e.open = true
		e.deadline = e.now().Add(e.duration)
	}

	slog.Info("state restored", "candidates", len(e.candidates), "voting_open", e.open)
}

// snapshotLocked builds a Snapshot copy. Caller must hold e.mu.
func (e *Engine) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{
		Candidates:   make([]models.Candidate, 0, len(e.candidates)),
		IsVotingOpen: e.open,
		SavedAt:      e.now(),
	}
	for _, c := range e.candidates {
		snap.Candidates = append(snap.Candidates, *c)
	}
	return snap
}

// persistLocked mirrors the current state to storage without blocking the
// calling command. Failures are logged, never propagated: the in-memory
// ledger is the live record and durability is best-effort.
func (e *Engine) persistLocked() {
	if e.persister == nil {
		return
	}
	e.enqueueSave(saveWork{snap: e.snapshotLocked()})
}

// enqueueSave hands work to the storage writer without blocking. Any still-
// pending work is superseded: only the newest state needs to reach storage.
func (e *Engine) enqueueSave(w saveWork) {
	for {
		select {
		case e.saves <- w:
			return
		default:
			select {
			case <-e.saves:
			default:
			}
		}
	}
}

// saveLoop is the single storage writer. All durable writes go through this
// goroutine so they commit in mutation order: a slow write delays the mirror
// but can never land after, and overwrite, a newer snapshot.
func (e *Engine) saveLoop() {
	for w := range e.saves {
		var err error
		if w.clear {
			err = e.persister.Clear()
		} else {
			err = e.persister.SaveSnapshot(w.snap)
		}
		if err != nil {
			slog.Warn("storage write failed", "error", err)
		}
	}
}

func (e *Engine) broadcast(event string, payload any) {
	if e.notifier != nil {
		e.notifier.Broadcast(event, payload)
	}
}
