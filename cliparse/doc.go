// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3419)
  - DatabaseURL: sqlite file path (default: kiosk.db) or PostgreSQL URL
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSecret: Secret for session token signing (required)
  - JuryPassword: Shared poll-worker password (required)
  - AdminUser / AdminPass / AdminPassHash: Administrator credentials
  - CloudSeedURL: Optional remote candidate seed endpoint
  - Positions: Elected positions on the ballot (default: personeria, contraloria)
  - VotingHours / VotingMinutes: Voting window duration (default: 8h)

# CLI Flags

	-p                Server port
	-d                Database URL / sqlite path
	-t                Database type
	-seed-url         Remote candidate seed URL
	-positions        Comma-separated position list
	-hours, -minutes  Voting window duration
	-session-secret, -jury-password, -admin-user, -admin-pass, -admin-pass-hash

# Environment Variables

Flags fall back to environment variables: PORT, DATABASE_URL, DATABASE_TYPE,
CLOUD_SEED_URL, POSITIONS, VOTING_HOURS, VOTING_MINUTES, SESSION_SECRET,
JURY_PASSWORD, ADMIN_USER, ADMIN_PASS, ADMIN_PASS_HASH.

Secrets must be provided one way or the other; ParseFlags returns an error
otherwise. ADMIN_PASS_HASH (a bcrypt hash) is preferred over the plaintext
ADMIN_PASS in anything beyond local development.
*/
package cliparse
