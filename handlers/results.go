// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/middleware"
)

type ResultsHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewResultsHandler(e *engine.Engine, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{engine: e, cfg: cfg}
}

// Get handles GET /results
// Aggregated per-position tallies with percentages and the current leader.
// Results are live, not sealed: the results screen runs on the same trusted
// kiosk, and the charts/export views consume this shape directly.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.engine.Tallies())
}
