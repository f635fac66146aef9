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

type CandidateHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewCandidateHandler(e *engine.Engine, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{engine: e, cfg: cfg}
}

// List handles GET /candidates?position=&active=&sort=
// Public read: the voter UI renders ballots from this.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.CandidateFilter{
		Position: strings.ToLower(r.URL.Query().Get("position")),
		SortBy:   r.URL.Query().Get("sort"),
	}
	switch r.URL.Query().Get("active") {
	case "true":
		active := true
		filter.Active = &active
	case "false":
		active := false
		filter.Active = &active
	}

	middleware.JSONResponse(w, http.StatusOK, h.engine.ListCandidates(filter))
}

// Add handles POST /candidates (admin)
func (h *CandidateHandler) Add(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Number <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "number must be positive")
		return
	}

	candidate, err := h.engine.AddCandidate(req)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}

// Update handles PATCH /candidates/{id} (admin)
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var patch models.CandidatePatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if patch.Number != nil && *patch.Number <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "number must be positive")
		return
	}

	candidate, err := h.engine.UpdateCandidate(id, patch)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// Remove handles DELETE /candidates/{id} (admin)
func (h *CandidateHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.engine.RemoveCandidate(id); err != nil {
		engineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearAll handles DELETE /candidates?confirm=true (admin)
// The confirm parameter is the upstream confirmation the engine requires
// before a destructive wipe.
func (h *CandidateHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "confirm=true required for clear-all")
		return
	}

	h.engine.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// ResetVotes handles POST /candidates/reset-votes?confirm=true (admin)
func (h *CandidateHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "confirm=true required for vote reset")
		return
	}

	h.engine.ResetVotes()
	middleware.JSONResponse(w, http.StatusOK, h.engine.ListCandidates(models.CandidateFilter{}))
}
