// Package visit implements the session lifecycle for the telemetry agent.
//
// A visit is one bounded browsing session identified by a short-lived token;
// a visitor is the durable device identity spanning many visits. The Manager
// owns both tokens plus a transient invalidation marker, persists them
// through a store.Store, and registers new visits with the collector.
//
// The central operation is Establish. On a live session it is a pure read
// path. On a new or invalidated session it mints tokens, probes that the
// store actually persists (degrading to untracked mode when it does not)
// and posts a visit-start payload; the readiness gate shared with the event
// queue opens only once the collector acknowledges that payload. Event
// delivery is therefore always preceded by a registered visit, at the cost
// of stalling if the registration call never completes.
package visit
