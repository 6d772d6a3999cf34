package gate

import "sync"

// Gate is a single-shot barrier. Continuations registered through Await run
// once the gate opens; the open transition is one-way and permanent.
//
// The zero value is a closed gate and is ready to use.
type Gate struct {
	mu      sync.Mutex
	open    bool
	pending []func()
}

// New returns a closed gate.
func New() *Gate {
	return &Gate{}
}

// Await runs fn synchronously if the gate is already open, preserving the
// caller's call-order expectations. Otherwise fn is appended to the ordered
// pending list and runs exactly once when Signal fires. If Signal never
// fires, fn never runs; that is the caller's risk, not a gate fault.
func (g *Gate) Await(fn func()) {
	if fn == nil {
		return
	}

	g.mu.Lock()
	if !g.open {
		g.pending = append(g.pending, fn)
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	fn()
}

// Signal drains the pending list in FIFO order, invoking each continuation
// exactly once, then flips the gate open. Continuations appended while the
// drain is in progress are drained too, before the gate flips. Calling
// Signal on an open gate is a no-op.
//
// Continuations run outside the gate's lock, so they may safely call Await.
func (g *Gate) Signal() {
	for {
		g.mu.Lock()
		if g.open {
			g.mu.Unlock()
			return
		}
		if len(g.pending) == 0 {
			g.open = true
			g.mu.Unlock()
			return
		}
		fn := g.pending[0]
		g.pending = g.pending[1:]
		g.mu.Unlock()

		fn()
	}
}

// Open reports whether the gate has been signalled.
func (g *Gate) Open() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}
