// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the kiosk-vote server.

kiosk-vote is a polling-station voting engine for a single shared kiosk:
a jury member unlocks the ballot, one voter votes per position, and an
admin manages candidates and the voting window. All state lives in one
in-memory engine, snapshotted to a local store after every mutation.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SESSION_SECRET=... JURY_PASSWORD=... ADMIN_USER=... ADMIN_PASS=... go run .

Or with flags:

	go run . -p 3419 -d kiosk.db

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): Secret for signing bearer tokens
  - JURY_PASSWORD (--jury-password): Shared jury unlock password
  - ADMIN_USER (--admin-user): Admin username
  - ADMIN_PASS or ADMIN_PASS_HASH: Admin password, plain or bcrypt

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - DATABASE_TYPE: "sqlite" (default) or "postgres"
  - CLOUD_SEED_URL: Remote candidate list merged at boot, local wins
  - POSITIONS: Comma-separated contested positions
  - VOTING_HOURS / VOTING_MINUTES: Window duration (default: 8h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - engine: Registry, ledger, sessions, and window clock behind one mutex
  - handlers: HTTP request handlers plus the WebSocket hub
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - store: Durable key-value snapshots and the cloud seed fetch
  - auth: Bearer token signing and validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
