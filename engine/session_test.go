package engine

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/kiosk-vote/models"
)

func TestVerifyJuryPassword(t *testing.T) {
	e, _ := newTestEngine(t)

	if !e.VerifyJuryPassword("jury-pw") {
		t.Error("correct password rejected")
	}
	if e.VerifyJuryPassword("wrong") {
		t.Error("wrong password accepted")
	}
	if e.VerifyJuryPassword("") {
		t.Error("empty password accepted")
	}
}

func TestVerifyAdminCredentials(t *testing.T) {
	e, _ := newTestEngine(t)

	if !e.VerifyAdminCredentials("admin", "admin-pw") {
		t.Error("correct credentials rejected")
	}
	if e.VerifyAdminCredentials("admin", "wrong") {
		t.Error("wrong password accepted")
	}
	if e.VerifyAdminCredentials("root", "admin-pw") {
		t.Error("wrong username accepted")
	}
}

func TestVerifyAdminCredentials_BcryptHash(t *testing.T) {
	cfg := testConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg.AdminPass = ""
	cfg.AdminPassHash = string(hash)
	e := New(cfg, nil)

	if !e.VerifyAdminCredentials("admin", "s3cret") {
		t.Error("hashed credentials rejected")
	}
	if e.VerifyAdminCredentials("admin", "other") {
		t.Error("wrong password accepted against hash")
	}
}

func TestLogin_VoterNumbering(t *testing.T) {
	e, _ := newTestEngine(t)

	s1 := loginVoter(t, e)
	e.Logout()

	// Failed password attempts do not consume numbers.
	e.VerifyJuryPassword("wrong")
	e.VerifyJuryPassword("wrong")

	s2 := loginVoter(t, e)
	if s1.VoterNumber != 1 || s2.VoterNumber != 2 {
		t.Errorf("expected sequential numbers 1,2 got %d,%d", s1.VoterNumber, s2.VoterNumber)
	}
}

func TestLogin_MalformedDescriptor(t *testing.T) {
	e, _ := newTestEngine(t)

	tests := []struct {
		name string
		desc models.SessionDescriptor
	}{
		{"voter without hasVoted", models.SessionDescriptor{Kind: models.SessionVoter}},
		{"voter missing position", models.SessionDescriptor{
			Kind:     models.SessionVoter,
			HasVoted: map[string]bool{"personeria": false},
		}},
		{"voter with extra position", models.SessionDescriptor{
			Kind:     models.SessionVoter,
			HasVoted: map[string]bool{"personeria": false, "alcaldia": false},
		}},
		{"unknown kind", models.SessionDescriptor{Kind: "jury"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Login(tt.desc); !errors.Is(err, ErrMalformedSession) {
				t.Fatalf("expected ErrMalformedSession, got %v", err)
			}
		})
	}
}

func TestLogin_ForceReplace(t *testing.T) {
	e, _ := newTestEngine(t)
	ana := addCandidate(t, e, "Ana", 1, "personeria")
	openWindow(t, e)

	s1 := loginVoter(t, e)
	if _, err := e.CastVote(s1.ID, ana.ID, "personeria"); err != nil {
		t.Fatalf("cast: %v", err)
	}

	// New login replaces the half-completed session; the cast vote stays.
	s2 := loginVoter(t, e)
	if s2.ID == s1.ID {
		t.Fatal("expected a fresh session")
	}
	view := e.CurrentSession()
	if view.VoterNumber != s2.VoterNumber {
		t.Errorf("expected live voter %d, got %d", s2.VoterNumber, view.VoterNumber)
	}
	if view.HasVoted["personeria"] {
		t.Error("new session inherited hasVoted state")
	}
	if got := e.ListCandidates(models.CandidateFilter{})[0].Votes; got != 1 {
		t.Errorf("replacement lost a counted vote: %d", got)
	}
}

func TestLogoutKeepsVotes(t *testing.T) {
	e, _ := newTestEngine(t)
	ana := addCandidate(t, e, "Ana", 1, "personeria")
	openWindow(t, e)
	s := loginVoter(t, e)
	if _, err := e.CastVote(s.ID, ana.ID, "personeria"); err != nil {
		t.Fatalf("cast: %v", err)
	}

	e.Logout()

	if view := e.CurrentSession(); view.Kind != models.SessionAnonymous {
		t.Fatalf("expected anonymous, got %s", view.Kind)
	}
	if got := e.ListCandidates(models.CandidateFilter{})[0].Votes; got != 1 {
		t.Errorf("logout mutated vote counts: %d", got)
	}
}

func TestSessionAlive(t *testing.T) {
	e, _ := newTestEngine(t)
	s, err := e.Login(models.SessionDescriptor{Kind: models.SessionAdmin})
	if err != nil {
		t.Fatal(err)
	}

	if !e.SessionAlive(s.ID, models.SessionAdmin) {
		t.Error("live admin session not recognized")
	}
	if e.SessionAlive(s.ID, models.SessionVoter) {
		t.Error("kind mismatch accepted")
	}
	if e.SessionAlive("other", models.SessionAdmin) {
		t.Error("unknown id accepted")
	}
	e.Logout()
	if e.SessionAlive(s.ID, models.SessionAdmin) {
		t.Error("logged-out session still alive")
	}
}

func TestLoginReturnsDetachedBallotState(t *testing.T) {
	e, _ := newTestEngine(t)
	s := loginVoter(t, e)

	// The returned copy must not alias the live session's ballot map.
	s.HasVoted["personeria"] = true

	view := e.CurrentSession()
	if view.HasVoted["personeria"] {
		t.Error("mutating the returned session changed the live ballot state")
	}
}
