// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/middleware"
	"github.com/danielhkuo/kiosk-vote/models"
)

// importBodyLimit caps uploaded export files.
const importBodyLimit = 8 << 20

type TransferHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewTransferHandler(e *engine.Engine, cfg cliparse.Config) *TransferHandler {
	return &TransferHandler{engine: e, cfg: cfg}
}

// Export handles GET /export (admin)
// Streams the full election state as a downloadable JSON file.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	file := models.ExportFile{
		Candidates:   h.engine.ListCandidates(models.CandidateFilter{}),
		IsVotingOpen: h.engine.WindowStatus().Open,
		ExportDate:   time.Now(),
	}

	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		slog.Error("failed to marshal export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export")
		return
	}

	filename := fmt.Sprintf("election-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)

	slog.Info("state exported",
		"candidates", len(file.Candidates),
		"size", humanize.Bytes(uint64(len(payload))),
	)
}

// Import handles POST /import (admin)
// Merges an export file into the registry. Existing candidates are never
// overwritten; ballot-number collisions are skipped and reported.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	if liveSessionID(w, r, h.engine, h.cfg, models.SessionAdmin) == "" {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, importBodyLimit))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}
	defer r.Body.Close()

	var file models.ExportFile
	if err := json.Unmarshal(body, &file); err != nil {
		engineError(w, engine.ErrMalformedImport)
		return
	}
	if file.Candidates == nil {
		engineError(w, engine.ErrMalformedImport)
		return
	}

	imported, skipped, err := h.engine.ImportCandidates(file.Candidates)
	if err != nil {
		engineError(w, err)
		return
	}

	slog.Info("state imported",
		"imported", imported,
		"skipped", skipped,
		"size", humanize.Bytes(uint64(len(body))),
	)

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Imported: imported,
		Skipped:  skipped,
	})
}
