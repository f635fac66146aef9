// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/kiosk-vote/auth"
	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/middleware"
	"github.com/danielhkuo/kiosk-vote/models"
)

type SessionHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewSessionHandler(e *engine.Engine, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{engine: e, cfg: cfg}
}

// JuryLogin handles POST /session/jury
// The jury password is the gate: a correct attempt creates the next voter
// session and hands its token to the kiosk.
func (h *SessionHandler) JuryLogin(w http.ResponseWriter, r *http.Request) {
	var req models.JuryLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !h.engine.VerifyJuryPassword(req.Password) {
		slog.Warn("jury password rejected")
		engineError(w, engine.ErrInvalidCredential)
		return
	}

	session, err := h.engine.Login(h.engine.VoterDescriptor())
	if err != nil {
		engineError(w, err)
		return
	}

	token, err := auth.SignSession(session.ID, session.Kind, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to sign voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		Token: token,
		Session: models.SessionView{
			Kind:        session.Kind,
			VoterNumber: session.VoterNumber,
			HasVoted:    session.HasVoted,
		},
	})
}

// AdminLogin handles POST /session/admin
func (h *SessionHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !h.engine.VerifyAdminCredentials(req.Username, req.Password) {
		slog.Warn("admin login rejected", "username", req.Username)
		engineError(w, engine.ErrInvalidCredential)
		return
	}

	session, err := h.engine.Login(models.SessionDescriptor{Kind: models.SessionAdmin})
	if err != nil {
		engineError(w, err)
		return
	}

	token, err := auth.SignSession(session.ID, session.Kind, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to sign admin token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		Token:   token,
		Session: models.SessionView{Kind: session.Kind},
	})
}

// Logout handles POST /session/logout
// Idempotent: logging out an already-anonymous kiosk is fine.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.engine.Logout()
	middleware.JSONResponse(w, http.StatusOK, h.engine.CurrentSession())
}

// Get handles GET /session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.engine.CurrentSession())
}
