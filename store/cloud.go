// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danielhkuo/kiosk-vote/models"
)

// seedBodyLimit caps the remote payload; a candidate roster is small.
const seedBodyLimit = 4 << 20

var seedClient = &http.Client{Timeout: 10 * time.Second}

// FetchCloudSeed fetches the remote candidate collection used to seed the
// registry at startup. Read-only and best-effort: the caller treats any
// error as "run with local state".
func FetchCloudSeed(ctx context.Context, url string) ([]models.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := seedClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch seed: unexpected status %d", resp.StatusCode)
	}

	var candidates []models.Candidate
	if err := json.NewDecoder(io.LimitReader(resp.Body, seedBodyLimit)).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return candidates, nil
}
