package eventqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/beaconlabs/beacon/pkg/gate"
	"github.com/beaconlabs/beacon/pkg/logger"
	"github.com/beaconlabs/beacon/pkg/store"
	"github.com/beaconlabs/beacon/pkg/transport"
	"github.com/beaconlabs/beacon/pkg/visit"
)

// Session is the slice of the visit manager the queue needs: a way to check
// whether a visit exists and a hook to establish one.
type Session interface {
	VisitID(ctx context.Context) string
	Establish(ctx context.Context)
}

// Queue is the durable, ordered set of pending telemetry events. The
// in-memory slice is the source of truth; the store holds a mirror
// serialized under one key, rewritten on every mutation. Delivery is
// at-least-once: an event is pruned only after the collector acknowledges
// the request that named its id, and everything still persisted at startup
// is resubmitted.
type Queue struct {
	mu        sync.Mutex
	events    []Event
	store     store.Store
	transport transport.Transport
	gate      *gate.Gate
	session   Session
	config    Config
	log       *slog.Logger
}

// Option is a functional option for configuring the Queue.
type Option func(*Queue)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(q *Queue) {
		q.config = config
	}
}

// WithSession wires the visit manager so delivery can trigger session
// establishment when no visit exists yet.
func WithSession(s Session) Option {
	return func(q *Queue) {
		q.session = s
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(q *Queue) {
		if log != nil {
			q.log = log
		}
	}
}

// New creates an event queue bound to a durable store, a transport and the
// readiness gate delivery drains through.
func New(s store.Store, t transport.Transport, g *gate.Gate, opts ...Option) *Queue {
	q := &Queue{
		store:     s,
		transport: t,
		gate:      g,
		config:    DefaultConfig(),
		log:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Enqueue builds an event record, appends it to the queue, persists the
// queue immediately, and schedules delivery after the debounce window.
func (q *Queue) Enqueue(ctx context.Context, name string, properties Properties) {
	if properties == nil {
		properties = Properties{}
	}

	event := Event{
		ID:         visit.NewToken(),
		Name:       name,
		Properties: properties,
		Time:       now(),
	}

	q.mu.Lock()
	q.events = append(q.events, event)
	q.persistLocked(ctx)
	q.mu.Unlock()

	q.log.DebugContext(ctx, "event queued",
		logger.EventID(event.ID),
		logger.EventName(event.Name),
	)

	// The debounce runs on a timer goroutine after the caller returns, so
	// detach from the caller's cancellation.
	delivery := context.WithoutCancel(ctx)
	time.AfterFunc(q.config.Debounce, func() {
		q.deliver(delivery, event)
	})
}

// Rehydrate restores the persisted queue and resubmits every recovered
// event in stored order. Events already pending in memory are skipped, so
// an event tracked before Rehydrate runs is not submitted a second time by
// its own mirror entry. A missing, empty or corrupt value degrades to an
// empty queue; corruption is never fatal.
func (q *Queue) Rehydrate(ctx context.Context) {
	value, err := q.store.Get(ctx, q.config.StorageKey)
	if err != nil || value == "" {
		return
	}

	var events []Event
	if err := json.Unmarshal([]byte(value), &events); err != nil {
		q.log.DebugContext(ctx, "persisted event queue corrupt, starting empty", logger.Error(err))
		return
	}

	q.mu.Lock()
	pending := make(map[string]bool, len(q.events))
	for _, event := range q.events {
		pending[event.ID] = true
	}
	var recovered []Event
	for _, event := range events {
		if !pending[event.ID] {
			recovered = append(recovered, event)
		}
	}
	// Recovered events predate anything enqueued this run.
	q.events = append(append([]Event{}, recovered...), q.events...)
	q.mu.Unlock()

	// Enqueue detaches its delivery timers the same way; a cancelled
	// startup context must not abort recovered sends once the gate opens.
	delivery := context.WithoutCancel(ctx)
	for _, event := range recovered {
		q.deliver(delivery, event)
	}
}

// Clear drops all pending events and deletes the persisted mirror.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	q.events = nil
	q.mu.Unlock()

	return q.store.Delete(ctx, q.config.StorageKey)
}

// Events returns a snapshot of the pending events in order.
func (q *Queue) Events() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	snapshot := make([]Event, len(q.events))
	copy(snapshot, q.events)
	return snapshot
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// deliver submits one event through the gate. When no visit exists the
// session's Establish is queued first; establishing twice is harmless since
// the manager re-checks its state each run. The event itself ships as a
// one-element batch and is pruned only on acknowledgment.
func (q *Queue) deliver(ctx context.Context, event Event) {
	if q.session != nil && q.session.VisitID(ctx) == "" {
		q.gate.Await(func() { q.session.Establish(ctx) })
	}

	q.gate.Await(func() {
		q.transport.Post(ctx, q.config.EventsURL, []Event{event}, func() {
			q.acknowledge(ctx, event.ID)
		})
	})
}

// acknowledge removes the event with the matching id and re-persists the
// shorter queue. Ids are unique, so first match is the only match.
func (q *Queue) acknowledge(ctx context.Context, id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, event := range q.events {
		if event.ID == id {
			q.events = append(q.events[:i], q.events[i+1:]...)
			break
		}
	}
	q.persistLocked(ctx)

	q.log.DebugContext(ctx, "event delivered", logger.EventID(id))
}

// persistLocked mirrors the queue to the store under one key with the
// rolling TTL. Callers must hold q.mu.
func (q *Queue) persistLocked(ctx context.Context) {
	events := q.events
	if events == nil {
		events = []Event{}
	}

	value, err := json.Marshal(events)
	if err != nil {
		q.log.DebugContext(ctx, "event queue not serializable", logger.Error(err))
		return
	}

	if err := q.store.Set(ctx, q.config.StorageKey, string(value), q.config.StorageTTL); err != nil {
		q.log.DebugContext(ctx, "event queue not persisted", logger.Error(err))
	}
}
