// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine is the kiosk's voting state machine: candidate registry, vote
ledger, session manager and voting window clock behind one mutex.

# State Container

Engine owns all mutable state. Handlers issue commands and queries; nothing
else mutates candidates, the live session or the window:

	e := engine.New(cfg, store)
	e.Restore(snapshot)
	e.StartClock(ctx)

# Sessions

Exactly one session is live at a time. The jury password gates voter session
creation; voter sessions are anonymous, numbered sequentially, and carry a
hasVoted entry per required position. A completed ballot retires its session
automatically after a short delay. A new login replaces any live session,
logged with reason force_replace.

# The Ledger

CastVote is the only path that increments a vote count. Checks run in order
(window closed, authentication, hasVoted gate, candidate resolution) and the
increment plus gate flip happen atomically under the engine mutex, so a
duplicate submission yields exactly one count and one ErrAlreadyVoted.

# The Clock

The window is a deadline sampled once per second; remaining time is a pure
function of (deadline, now), so there is no drift and the close transition
fires exactly once. Reopening via ToggleVoting resets to the full configured
duration.

# Persistence

Every mutation mirrors a snapshot to the Persister asynchronously. All
writes run on a single writer goroutine, so snapshots commit in mutation
order and a slow write can never overwrite a newer one; pending work
collapses to the latest snapshot. Storage failures are logged and never
abort a user action: the in-memory ledger is the live record.
*/
package engine
