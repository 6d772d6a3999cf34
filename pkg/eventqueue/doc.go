// Package eventqueue implements the durable delivery queue for telemetry
// events.
//
// Tracked events are appended to an in-memory queue, mirrored to a durable
// store on every mutation, and submitted to the collector one per request
// once the shared readiness gate opens. An event is removed only after the
// collector acknowledges the request carrying its id, and at startup the
// persisted mirror is rehydrated and every pending event resubmitted.
//
// The result is at-least-once delivery across process restarts: a restart
// between a successful collector write and the acknowledgment reaching the
// agent leaves the event persisted, and it ships again on the next run.
// Collectors that need exactly-once dedupe by event id.
package eventqueue
