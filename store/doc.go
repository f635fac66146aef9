// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence gateway: a two-key durable mirror of engine
state plus the startup cloud seed fetch.

# Durable State

State lives in one table, kiosk_state(key, value, updated_at), under two
fixed versionless keys: the serialized candidate list and the window-open
flag. SaveSnapshot is called by the engine after every mutation; Load runs
once at startup. A missing snapshot returns ErrNoSnapshot and the engine
starts from defaults.

# Backends

sqlite (modernc.org/sqlite, pure Go) is the default, writing a local file
next to the binary — the kiosk has no external dependencies. postgres
(lib/pq) is selectable with DATABASE_TYPE=postgres. Queries are written with
postgres placeholders and rebound for sqlite.

# Cloud Seed

FetchCloudSeed performs the one read-only fetch of a remote candidate
collection. The engine merges it keeping local state authoritative; fetch
failures degrade to local-only operation.
*/
package store
