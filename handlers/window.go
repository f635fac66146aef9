// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/middleware"
	"github.com/danielhkuo/kiosk-vote/models"
)

type WindowHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewWindowHandler(e *engine.Engine, cfg cliparse.Config) *WindowHandler {
	return &WindowHandler{engine: e, cfg: cfg}
}

// Get handles GET /window
func (h *WindowHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.engine.WindowStatus())
}

// Toggle handles POST /window/toggle (admin)
func (h *WindowHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.engine.ToggleVoting())
}

// SetDuration handles PUT /window (admin)
func (h *WindowHandler) SetDuration(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	var req models.SetWindowRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Hours < 0 || req.Minutes < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hours and minutes must be non-negative")
		return
	}

	status, err := h.engine.SetDuration(req.Hours, req.Minutes)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}
