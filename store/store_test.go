package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/kiosk-vote/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "kiosk_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := New(db, "sqlite")
	if err := s.createSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	snap := models.Snapshot{
		Candidates: []models.Candidate{
			{ID: "c1", Name: "Ana", Number: 1, Position: "personeria", PhotoURL: "/img/ana.png", Votes: 4, Active: true},
			{ID: "c2", Name: "Beto", Number: 2, Position: "contraloria", Votes: 0, Active: false},
		},
		IsVotingOpen: true,
		SavedAt:      time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
	}
	if err := s.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got.Candidates))
	}
	if got.Candidates[0].ID != "c1" || got.Candidates[0].Votes != 4 {
		t.Errorf("candidate c1 mangled: %+v", got.Candidates[0])
	}
	if got.Candidates[1].Active {
		t.Error("inactive flag lost in round trip")
	}
	if !got.IsVotingOpen {
		t.Error("voting-open flag lost in round trip")
	}
	if !got.SavedAt.Equal(snap.SavedAt) {
		t.Errorf("expected SavedAt %v, got %v", snap.SavedAt, got.SavedAt)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := setupTestStore(t)

	first := models.Snapshot{
		Candidates:   []models.Candidate{{ID: "c1", Name: "Ana", Number: 1, Position: "personeria", Active: true}},
		IsVotingOpen: true,
	}
	if err := s.SaveSnapshot(first); err != nil {
		t.Fatal(err)
	}

	second := first
	second.Candidates[0].Votes = 7
	second.IsVotingOpen = false
	if err := s.SaveSnapshot(second); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Candidates[0].Votes != 7 {
		t.Errorf("expected latest write, got votes=%d", got.Candidates[0].Votes)
	}
	if got.IsVotingOpen {
		t.Error("expected latest window flag")
	}
}

func TestLoadEmpty(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestClear(t *testing.T) {
	s := setupTestStore(t)

	snap := models.Snapshot{
		Candidates:   []models.Candidate{{ID: "c1", Name: "Ana", Number: 1, Position: "personeria", Active: true}},
		IsVotingOpen: true,
	}
	if err := s.SaveSnapshot(snap); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, err := s.Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected empty storage after clear, got %v", err)
	}
}

func TestRebind(t *testing.T) {
	sqlite := New(nil, "sqlite")
	postgres := New(nil, "postgres")

	query := "SELECT value FROM kiosk_state WHERE key IN ($1, $2)"
	if got := sqlite.rebind(query); got != "SELECT value FROM kiosk_state WHERE key IN (?, ?)" {
		t.Errorf("sqlite rebind: %s", got)
	}
	if got := postgres.rebind(query); got != query {
		t.Errorf("postgres rebind should be identity, got %s", got)
	}
}
