// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/handlers"
	"github.com/danielhkuo/kiosk-vote/middleware"
)

func NewRouter(e *engine.Engine, cfg cliparse.Config, hub *handlers.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(e, cfg)
	candidateHandler := handlers.NewCandidateHandler(e, cfg)
	voteHandler := handlers.NewVoteHandler(e, cfg)
	windowHandler := handlers.NewWindowHandler(e, cfg)
	resultsHandler := handlers.NewResultsHandler(e, cfg)
	transferHandler := handlers.NewTransferHandler(e, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /session/jury", middleware.WithLogging(sessionHandler.JuryLogin))
	mux.HandleFunc("POST /session/admin", middleware.WithLogging(sessionHandler.AdminLogin))
	mux.HandleFunc("POST /session/logout", middleware.WithLogging(sessionHandler.Logout))
	mux.HandleFunc("GET /session", middleware.WithLogging(sessionHandler.Get))

	// Candidate registry (reads public, writes admin)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Add))
	mux.HandleFunc("PATCH /candidates/{id}", middleware.WithLogging(candidateHandler.Update))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(candidateHandler.Remove))
	mux.HandleFunc("DELETE /candidates", middleware.WithLogging(candidateHandler.ClearAll))
	mux.HandleFunc("POST /candidates/reset-votes", middleware.WithLogging(candidateHandler.ResetVotes))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Cast))

	// Voting window
	mux.HandleFunc("GET /window", middleware.WithLogging(windowHandler.Get))
	mux.HandleFunc("POST /window/toggle", middleware.WithLogging(windowHandler.Toggle))
	mux.HandleFunc("PUT /window", middleware.WithLogging(windowHandler.SetDuration))

	// Results and transfer
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.Get))
	mux.HandleFunc("GET /export", middleware.WithLogging(transferHandler.Export))
	mux.HandleFunc("POST /import", middleware.WithLogging(transferHandler.Import))

	// Live feed
	mux.HandleFunc("GET /ws", hub.Serve)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("kiosk-vote API v1"))
	})

	return mux
}
