package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchCloudSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "c1", "name": "Ana", "number": 1, "position": "personeria", "active": true},
			{"id": "c2", "name": "Beto", "number": 2, "position": "contraloria", "active": true}
		]`))
	}))
	defer srv.Close()

	candidates, err := FetchCloudSeed(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchCloudSeed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "Ana" || candidates[0].Position != "personeria" {
		t.Errorf("unexpected first candidate: %+v", candidates[0])
	}
}

func TestFetchCloudSeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not here</html>"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			if _, err := FetchCloudSeed(context.Background(), srv.URL); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
