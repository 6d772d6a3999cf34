// Package beacon is a client-side telemetry agent: it establishes a visit
// session with a remote collector, assigns durable visitor and visit
// identifiers, and reliably delivers tracked events despite restarts and
// transient network or storage failure.
//
// # Architecture
//
// A Client composes four small components over one durable key-value store
// and one fire-and-forget transport:
//
//   - pkg/visit: the session state machine owning visit/visitor tokens.
//   - pkg/eventqueue: the durable, at-least-once event delivery queue.
//   - pkg/gate: the single-shot barrier sequencing delivery behind session
//     establishment.
//   - pkg/store, pkg/transport: the persistence and wire adapters.
//
// On Start the visit manager runs first: an intact session opens the gate
// immediately with no writes and no network call; otherwise tokens are
// minted, persisted and registered with the collector, and the gate opens
// only on the collector's acknowledgment. The persisted event queue is then
// rehydrated and every pending event resubmitted. Track appends to the
// queue, mirrors it to the store, and schedules delivery through the gate
// after a short debounce.
//
// Delivery is at-least-once: events leave the queue only when the collector
// acknowledges the request naming their id, so collectors that need
// exactly-once dedupe by event id.
//
// # Usage
//
//	agent, err := beacon.New(
//	    beacon.WithCollectorURLs(
//	        "https://collector.example.com/ahoy/visits",
//	        "https://collector.example.com/ahoy/events",
//	    ),
//	    beacon.WithStore(store.NewRedisStore(redisClient, "myapp")),
//	    beacon.WithPageContext("https://app.example.com/welcome", "Welcome", ""),
//	)
//	if err != nil {
//	    return err
//	}
//
//	agent.Start(ctx)
//	agent.Track(ctx, "signup", beacon.Properties{"plan": "pro"})
//
// Track never reports delivery success or failure; the only observable
// signal is the debug log stream toggled by Debug.
package beacon
