// Package gate provides a single-shot readiness barrier.
//
// A Gate starts closed. Callers register continuations with Await; once
// Signal fires, the pending continuations run in FIFO order and the gate
// flips open permanently. Continuations registered after that point run
// synchronously. There is no way to close an open gate, no timeout and no
// error state.
//
// The package exists to sequence work behind a one-time initialization
// event, such as deferring telemetry delivery until a session has been
// established with a collector:
//
//	g := gate.New()
//	g.Await(func() { sendEvent(e) }) // queued
//	g.Signal()                       // sendEvent runs, gate opens
//	g.Await(func() { sendEvent(e2) }) // runs immediately
//
// All methods are safe for concurrent use.
package gate
