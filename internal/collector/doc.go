// Package collector implements the server side of the telemetry agent: the
// HTTP endpoints visits and events are posted to, with pluggable storage.
//
// The agent delivers at-least-once, so every storage backend dedupes events
// by id: the in-memory backend with a seen-set, the postgres backend with
// an insert that conflicts on the primary key and does nothing.
package collector
