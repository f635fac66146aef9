// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/models"
)

// Fixed, versionless storage keys (one per serialized value).
const (
	keyCandidates = "candidates"
	keyVotingOpen = "voting_open"
)

// ErrNoSnapshot is returned by Load when no prior state was persisted.
var ErrNoSnapshot = errors.New("no snapshot in storage")

// Store mirrors engine snapshots into a two-key durable table. sqlite is the
// default backend; postgres is supported for shared-infrastructure setups.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the configured database and returns a ready Store.
func Open(cfg cliparse.Config) (*Store, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.createSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection. Used by tests.
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// createSchema creates the state table. Safe to call multiple times.
func (s *Store) createSchema() error {
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kiosk_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SaveSnapshot writes the candidate list and window flag under their fixed
// keys. Write-through: the engine calls this after every mutation.
func (s *Store) SaveSnapshot(snap models.Snapshot) error {
	payload, err := json.Marshal(snap.Candidates)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	stamp := savedAt.UTC().Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	upsert := s.rebind(`
		INSERT INTO kiosk_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if _, err := tx.Exec(upsert, keyCandidates, string(payload), stamp); err != nil {
		return fmt.Errorf("save candidates: %w", err)
	}
	if _, err := tx.Exec(upsert, keyVotingOpen, strconv.FormatBool(snap.IsVotingOpen), stamp); err != nil {
		return fmt.Errorf("save window flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. Returns ErrNoSnapshot when storage is
// empty; the caller falls back to defaults either way.
func (s *Store) Load() (models.Snapshot, error) {
	var snap models.Snapshot

	var raw, stamp string
	err := s.db.QueryRow(s.rebind(`
		SELECT value, updated_at FROM kiosk_state WHERE key = $1
	`), keyCandidates).Scan(&raw, &stamp)
	if err == sql.ErrNoRows {
		return snap, ErrNoSnapshot
	}
	if err != nil {
		return snap, fmt.Errorf("load candidates: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &snap.Candidates); err != nil {
		return snap, fmt.Errorf("decode candidates: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, stamp); err == nil {
		snap.SavedAt = t
	}

	var openRaw string
	err = s.db.QueryRow(s.rebind(`
		SELECT value FROM kiosk_state WHERE key = $1
	`), keyVotingOpen).Scan(&openRaw)
	if err != nil && err != sql.ErrNoRows {
		return snap, fmt.Errorf("load window flag: %w", err)
	}
	snap.IsVotingOpen = openRaw == "true"

	return snap, nil
}

// Clear removes both state keys. Destructive; paired with the engine's
// clear-all command.
func (s *Store) Clear() error {
	_, err := s.db.Exec(s.rebind(`
		DELETE FROM kiosk_state WHERE key IN ($1, $2)
	`), keyCandidates, keyVotingOpen)
	if err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}

// rebind converts $N placeholders to ? for the sqlite driver. Queries are
// written in postgres style, matching how lib/pq wants them.
func (s *Store) rebind(query string) string {
	if s.driver != "sqlite" {
		return query
	}
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
