// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response and domain types shared by the
engine, store and HTTP layers.

Domain types (Candidate, Session, WindowStatus, Snapshot) carry JSON tags so
the same shapes serve the API, the durable snapshot and the import/export
file. Request/response structs exist per endpoint rather than reusing domain
types directly, so wire contracts can drift from storage without breakage.
*/
package models
