// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the kiosk-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(e, cfg, hub)

# Endpoints

Health:

	GET /health

Sessions:

	POST /session/jury   - Jury unlock, creates voter session
	POST /session/admin  - Admin login
	POST /session/logout - End the live session
	GET  /session        - Current session view

Candidate registry (reads public, writes admin):

	GET    /candidates             - List with position/active/sort filters
	POST   /candidates             - Register candidate
	PATCH  /candidates/{id}        - Edit candidate
	DELETE /candidates/{id}        - Retire candidate
	DELETE /candidates             - Clear registry (confirm=true)
	POST   /candidates/reset-votes - Zero all counts (confirm=true)

Voting (voter session):

	POST /votes - Cast one vote for a position

Voting window:

	GET  /window        - Countdown and severity
	POST /window/toggle - Open/close (admin)
	PUT  /window        - Set duration (admin)

Results and transfer:

	GET  /results - Live per-position tallies
	GET  /export  - Download election state (admin)
	POST /import  - Merge an export file (admin)

Live feed:

	GET /ws - WebSocket push of window/vote/registry events

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(e, cfg)
	voteHandler := handlers.NewVoteHandler(e, cfg)

All handlers receive the engine and configuration. The WebSocket hub is
constructed by the caller so it can also be registered as the engine's
notifier.
*/
package router
