// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/middleware"
	"github.com/danielhkuo/kiosk-vote/models"
)

type VoteHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewVoteHandler(e *engine.Engine, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{engine: e, cfg: cfg}
}

// Cast handles POST /votes
// The engine re-checks everything under its lock; this handler only binds
// the bearer token to a session id and shapes the response.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	sessionID := liveSessionID(w, r, h.engine, h.cfg, models.SessionVoter)
	if sessionID == "" {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}
	if req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position is required")
		return
	}

	resp, err := h.engine.CastVote(sessionID, req.CandidateID, strings.ToLower(req.Position))
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, resp)
}
