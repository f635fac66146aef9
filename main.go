package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/handlers"
	"github.com/danielhkuo/kiosk-vote/middleware"
	"github.com/danielhkuo/kiosk-vote/router"
	"github.com/danielhkuo/kiosk-vote/store"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open durable storage
	st, err := store.Open(cfg)
	if err != nil {
		slog.Error("storage open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	// Build the engine and restore persisted state
	e := engine.New(cfg, st)
	snap, err := st.Load()
	switch {
	case err == store.ErrNoSnapshot:
		slog.Info("no prior snapshot, starting fresh")
	case err != nil:
		// Degrade to defaults rather than refusing to start.
		slog.Warn("snapshot load failed, starting fresh", "error", err)
	default:
		e.Restore(snap)
	}

	// Seed the registry from the remote collection, if configured.
	// Best-effort: a fetch failure means local-only operation.
	if cfg.CloudSeedURL != "" {
		seed, err := store.FetchCloudSeed(context.Background(), cfg.CloudSeedURL)
		if err != nil {
			slog.Warn("cloud seed fetch failed", "error", err)
		} else {
			e.SeedCandidates(seed)
		}
	}

	// Live feed hub + window clock
	hub := handlers.NewHub()
	e.SetNotifier(hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.StartClock(ctx)

	// Create router
	mux := router.NewRouter(e, cfg, hub)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
