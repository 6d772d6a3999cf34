package visit

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/beaconlabs/beacon/pkg/gate"
	"github.com/beaconlabs/beacon/pkg/logger"
	"github.com/beaconlabs/beacon/pkg/store"
	"github.com/beaconlabs/beacon/pkg/transport"
)

// StartPayload is the visit-start body posted to the collector. Field names
// are a wire contract shared with ahoy-compatible collectors; referrer is
// omitted when empty.
type StartPayload struct {
	VisitToken   string `json:"visit_token"`
	VisitorToken string `json:"visitor_token"`
	Platform     string `json:"platform"`
	LandingPage  string `json:"landing_page"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	Referrer     string `json:"referrer,omitempty"`
}

// Manager owns the visit lifecycle: it decides whether an existing session
// is still valid, mints visit and visitor tokens when needed, persists them,
// and opens the readiness gate once the collector has acknowledged the
// visit-start registration.
type Manager struct {
	store     store.Store
	transport transport.Transport
	gate      *gate.Gate
	config    Config
	log       *slog.Logger
	mu        sync.Mutex
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a visit manager bound to a durable store, a transport and the
// readiness gate it signals.
func New(s store.Store, t transport.Transport, g *gate.Gate, opts ...Option) *Manager {
	m := &Manager{
		store:     s,
		transport: t,
		gate:      g,
		config:    DefaultConfig(),
		log:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// VisitID returns the current visit token, or an empty string when no visit
// is active or the store is unavailable.
func (m *Manager) VisitID(ctx context.Context) string {
	return m.read(ctx, m.config.VisitKey)
}

// VisitorID returns the durable visitor token, or an empty string when
// absent or the store is unavailable.
func (m *Manager) VisitorID(ctx context.Context) string {
	return m.read(ctx, m.config.VisitorKey)
}

// Establish runs the session state machine and eventually opens the gate.
//
// With a live visit token, a visitor token and no invalidation marker this
// is the cheap path: no writes, no network call, gate opened immediately.
// Otherwise new identifiers are minted and persisted, and the gate opens
// only once the collector acknowledges the visit-start payload, so session
// existence on the server happens-before any event delivery. When the store
// turns out to be unavailable (a post-write read-back comes up empty) the
// manager degrades to untracked mode and opens the gate anyway.
//
// Establish is normally invoked once per process; repeat invocations are
// harmless because the state is re-read each time.
func (m *Manager) Establish(ctx context.Context) {
	if m.establish(ctx) {
		// Signalled outside the manager lock: drained continuations may
		// re-enter Establish.
		m.gate.Signal()
	}
}

// establish runs the state machine under the manager lock and reports
// whether the caller should open the gate itself. On the registration path
// the transport's acknowledgment callback opens it instead.
func (m *Manager) establish(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	visitID := m.read(ctx, m.config.VisitKey)
	visitorID := m.read(ctx, m.config.VisitorKey)
	marker := m.read(ctx, m.config.MarkerKey)

	if visitID != "" && visitorID != "" && marker == "" {
		m.log.DebugContext(ctx, "active visit", logger.VisitID(visitID))
		return true
	}

	if marker != "" {
		// the marker forces a new visit exactly once
		if err := m.store.Delete(ctx, m.config.MarkerKey); err != nil {
			m.log.DebugContext(ctx, "invalidation marker not cleared", logger.Error(err))
		}
	}

	if visitID == "" {
		visitID = NewToken()
		if err := m.store.Set(ctx, m.config.VisitKey, visitID, m.config.VisitTTL); err != nil {
			m.log.DebugContext(ctx, "visit token not persisted", logger.Error(err))
		}
	}

	// Read back the visit token as a storage-capability probe. When
	// persistence is disabled or blocked the agent degrades to no session
	// tracking instead of failing the host.
	if m.read(ctx, m.config.VisitKey) == "" {
		m.log.DebugContext(ctx, "storage unavailable, session not tracked")
		return true
	}

	if visitorID == "" {
		visitorID = NewToken()
		if err := m.store.Set(ctx, m.config.VisitorKey, visitorID, m.config.VisitorTTL); err != nil {
			m.log.DebugContext(ctx, "visitor token not persisted", logger.Error(err))
		}
	}

	payload := StartPayload{
		VisitToken:   visitID,
		VisitorToken: visitorID,
		Platform:     m.config.Platform,
		LandingPage:  m.config.LandingPage,
		ScreenWidth:  m.config.ScreenWidth,
		ScreenHeight: m.config.ScreenHeight,
		Referrer:     m.config.Referrer,
	}

	m.log.DebugContext(ctx, "visit started",
		logger.VisitID(visitID),
		logger.VisitorID(visitorID),
	)

	// If the collector never acknowledges, the gate never opens and no
	// events leave this process. Accepted trade-off: server-side session
	// existence over silent event submission without one.
	m.transport.Post(ctx, m.config.VisitsURL, payload, m.gate.Signal)
	return false
}

// Invalidate sets the transient marker that forces the next Establish to
// start a fresh visit while keeping the visitor identity.
func (m *Manager) Invalidate(ctx context.Context) error {
	return m.store.Set(ctx, m.config.MarkerKey, "t", m.config.VisitTTL)
}

// Reset deletes the visit token, the visitor token and the invalidation
// marker. Used for explicit opt-out; the event queue clears its own state.
func (m *Manager) Reset(ctx context.Context) error {
	return errors.Join(
		m.store.Delete(ctx, m.config.VisitKey),
		m.store.Delete(ctx, m.config.VisitorKey),
		m.store.Delete(ctx, m.config.MarkerKey),
	)
}

// read treats every store failure as absence; the manager degrades rather
// than surfaces storage errors.
func (m *Manager) read(ctx context.Context, key string) string {
	value, err := m.store.Get(ctx, key)
	if err != nil {
		return ""
	}
	return value
}

// NewToken mints an opaque version-4 identifier used for visit tokens,
// visitor tokens and event ids.
func NewToken() string {
	return uuid.NewString()
}
