// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the kiosk-vote API.

# Handler Types

Each handler is a struct with engine and config dependencies:

  - SessionHandler: Jury and admin login, logout, current session
  - CandidateHandler: Registry CRUD, clear-all, vote reset
  - VoteHandler: Ballot casting
  - WindowHandler: Voting window status, toggle, duration
  - ResultsHandler: Per-position tallies
  - TransferHandler: JSON export and import
  - Hub: WebSocket live feed

Handlers are created via constructor functions that accept *engine.Engine
and Config:

	voteHandler := handlers.NewVoteHandler(e, cfg)

# Session Flow

The kiosk holds at most one live session. A jury member unlocks a ballot
for the next voter; the admin manages the election:

	POST /session/jury  → JuryLogin (returns bearer token + voter number)
	POST /session/admin → AdminLogin (returns bearer token)
	POST /session/logout → Logout (idempotent)

Authenticated operations send the token in the Authorization header. A new
login replaces the live session and invalidates all earlier tokens.

# Voting Flow

A voter casts one vote per position. When every position is voted the
ballot is complete and the session retires shortly after:

	POST /votes → Cast (body: candidate_id, position)

Duplicate votes for a position return 409; votes outside the window
return 409; unknown candidates return 422.

# Live Feed

GET /ws upgrades to a WebSocket. The hub pushes window countdowns, vote
totals, and registry changes to connected result screens. Slow clients
are dropped rather than allowed to stall the broadcast.
*/
package handlers
