// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues and validates the bearer tokens that bind HTTP callers
to the engine's single live session.

# Session Tokens

Tokens are HS256 JWTs carrying the engine session id and role:

	token, err := auth.SignSession(session.ID, session.Kind, cfg.SessionSecret)
	claims, err := auth.ParseSession(token, cfg.SessionSecret)

A parsed token is only half the check: handlers also ask the engine whether
that session id is still the live one (engine.SessionAlive). Logging in on
the kiosk invalidates every previously issued token that way, without any
token revocation list.
*/
package auth
