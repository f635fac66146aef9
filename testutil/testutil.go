// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/kiosk-vote/auth"
	"github.com/danielhkuo/kiosk-vote/cliparse"
	"github.com/danielhkuo/kiosk-vote/engine"
	"github.com/danielhkuo/kiosk-vote/models"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3419,
		DatabaseURL:   "test.db",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		JuryPassword:  "test-jury-pw",
		AdminUser:     "admin",
		AdminPass:     "test-admin-pw",
		Positions:     []string{"personeria", "contraloria"},
		VotingHours:   8,
	}
}

// NewTestEngine creates an engine with no persistence backing
func NewTestEngine(t *testing.T) (*engine.Engine, cliparse.Config) {
	t.Helper()
	cfg := GetTestConfig()
	return engine.New(cfg, nil), cfg
}

// AddTestCandidate registers a candidate and returns it
func AddTestCandidate(t *testing.T, e *engine.Engine, name string, number int, position string) models.Candidate {
	t.Helper()
	c, err := e.AddCandidate(models.AddCandidateRequest{Name: name, Number: number, Position: position})
	if err != nil {
		t.Fatalf("Failed to add test candidate %s: %v", name, err)
	}
	return c
}

// AdminToken logs in the admin session and returns its bearer token
func AdminToken(t *testing.T, e *engine.Engine, cfg cliparse.Config) string {
	t.Helper()
	session, err := e.Login(models.SessionDescriptor{Kind: models.SessionAdmin})
	if err != nil {
		t.Fatalf("Failed to create admin session: %v", err)
	}
	token, err := auth.SignSession(session.ID, session.Kind, cfg.SessionSecret)
	if err != nil {
		t.Fatalf("Failed to sign admin token: %v", err)
	}
	return token
}

// VoterToken creates a voter session through the jury gate and returns its
// bearer token plus the session
func VoterToken(t *testing.T, e *engine.Engine, cfg cliparse.Config) (string, models.Session) {
	t.Helper()
	session, err := e.Login(e.VoterDescriptor())
	if err != nil {
		t.Fatalf("Failed to create voter session: %v", err)
	}
	token, err := auth.SignSession(session.ID, session.Kind, cfg.SessionSecret)
	if err != nil {
		t.Fatalf("Failed to sign voter token: %v", err)
	}
	return token, session
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
