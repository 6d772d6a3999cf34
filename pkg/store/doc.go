// Package store provides the durable key-value adapter the telemetry agent
// persists its state through: visit and visitor tokens, transient markers and
// the serialized event queue.
//
// The Store interface models the minimum capability required (get, set with
// relative TTL, delete) so the agent stays agnostic about where values
// actually live. Two implementations ship with the package:
//
//   - MemoryStore: process-local, for tests and short-lived hosts.
//   - RedisStore: shared and durable across restarts, for server-side agents.
//
// Absent and expired keys are reported uniformly as ErrNotFound; callers that
// only care about presence can treat any error as "absent" without losing
// correctness, since the agent degrades rather than fails when storage is
// unavailable.
package store
