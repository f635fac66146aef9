// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/kiosk-vote/models"
)

// Severity thresholds for the window display. Display-only: nothing in the
// engine changes behavior at these marks.
const (
	warningThreshold  = 30 * time.Minute
	criticalThreshold = 5 * time.Minute
)

// StartClock runs the one-second sampling loop until ctx is cancelled.
// Remaining time is derived from the stored deadline on every tick rather
// than decremented, so the clock cannot drift.
func (e *Engine) StartClock(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.tick()
			}
		}
	}()
}

// tick samples the clock and closes the window when the deadline passes.
// The transition fires exactly once: after it, openLocked is false and
// further ticks fall through without side effects.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.open && !e.now().Before(e.deadline) {
		e.open = false
		slog.Info("voting window closed", "reason", "deadline")
		e.persistLocked()
	}
	e.broadcast("window", e.windowStatusLocked())
}

// ToggleVoting flips the window. Reopening resets the deadline to the full
// configured duration; resume semantics are not recoverable from a closed
// window because only the open flag is persisted.
func (e *Engine) ToggleVoting() models.WindowStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.open {
		e.open = false
		slog.Info("voting window closed", "reason", "admin_toggle")
	} else {
		e.open = true
		e.deadline = e.now().Add(e.duration)
		slog.Info("voting window opened", "duration", e.duration.String())
	}

	e.persistLocked()
	status := e.windowStatusLocked()
	e.broadcast("window", status)
	return status
}

// SetDuration reconfigures the window length. If the window is open the
// deadline restarts from now with the new duration.
func (e *Engine) SetDuration(hours, minutes int) (models.WindowStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if d <= 0 {
		return models.WindowStatus{}, ErrInvalidDuration
	}
	e.duration = d
	if e.open {
		e.deadline = e.now().Add(d)
	}

	slog.Info("voting window duration set", "duration", d.String())
	status := e.windowStatusLocked()
	e.broadcast("window", status)
	return status, nil
}

// WindowStatus returns the observable clock state.
func (e *Engine) WindowStatus() models.WindowStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.windowStatusLocked()
}

// openLocked reports whether votes are currently accepted. Caller must hold
// e.mu. The deadline is checked here too so a vote arriving between the
// deadline and the next tick is still rejected.
func (e *Engine) openLocked() bool {
	return e.open && e.now().Before(e.deadline)
}

func (e *Engine) windowStatusLocked() models.WindowStatus {
	status := models.WindowStatus{Open: e.open, Severity: models.SeverityOK}
	if !e.open {
		status.Severity = models.SeverityCritical
		return status
	}

	remaining := remainingTime(e.deadline, e.now())
	status.Hours = int(remaining / time.Hour)
	status.Minutes = int(remaining % time.Hour / time.Minute)
	status.Seconds = int(remaining % time.Minute / time.Second)
	switch {
	case remaining < criticalThreshold:
		status.Severity = models.SeverityCritical
	case remaining < warningThreshold:
		status.Severity = models.SeverityWarning
	}
	return status
}

// remainingTime is the pure clock function: duration left given a deadline
// and the current instant, clamped at zero.
func remainingTime(deadline, now time.Time) time.Duration {
	if !now.Before(deadline) {
		return 0
	}
	return deadline.Sub(now)
}
