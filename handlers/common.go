// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/kiosk-vote/auth"
	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/middleware"
)

// engineError maps engine sentinels to HTTP responses. Anything unknown is
// a 500; engine errors are cheap values, so no stack logging here.
func engineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrUnauthenticated),
		errors.Is(err, engine.ErrInvalidCredential):
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, engine.ErrVotingClosed),
		errors.Is(err, engine.ErrAlreadyVoted),
		errors.Is(err, engine.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrUnknownCandidate):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, engine.ErrUnknownPosition),
		errors.Is(err, engine.ErrMalformedSession),
		errors.Is(err, engine.ErrMalformedImport),
		errors.Is(err, engine.ErrInvalidDuration):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

// liveSessionID validates the bearer token and checks that it names the
// live engine session of the wanted kind. Returns "" after writing a 401
// when either check fails.
func liveSessionID(w http.ResponseWriter, r *http.Request, e *engine.Engine, cfg cliparse.Config, kind string) string {
	token := middleware.BearerToken(r)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
		return ""
	}
	claims, err := auth.ParseSession(token, cfg.SessionSecret)
	if err != nil || claims.Role != kind {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid session token")
		return ""
	}
	if !e.SessionAlive(claims.SessionID, kind) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "session is no longer active")
		return ""
	}
	return claims.SessionID
}
