package beacon

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/beaconlabs/beacon/pkg/eventqueue"
	"github.com/beaconlabs/beacon/pkg/gate"
	"github.com/beaconlabs/beacon/pkg/logger"
	"github.com/beaconlabs/beacon/pkg/store"
	"github.com/beaconlabs/beacon/pkg/transport"
	"github.com/beaconlabs/beacon/pkg/visit"
)

// Properties carries arbitrary event metadata; values must stay within the
// JSON value set.
type Properties = eventqueue.Properties

// debugKey marks the persisted debug toggle; it survives a year like the
// tokens it helps inspect.
const (
	debugKey = "beacon_debug"
	debugTTL = 365 * 24 * time.Hour
)

// Client is the public face of the telemetry agent. It wires the visit
// manager, the event queue and the readiness gate over one durable store
// and one transport, and exposes the tracking API to the host application.
//
// Construct with New, then call Start once; Track may be called before
// Start, the events simply wait in the queue.
type Client struct {
	config    Config
	store     store.Store
	transport transport.Transport
	gate      *gate.Gate
	manager   *visit.Manager
	queue     *eventqueue.Queue
	log       *slog.Logger
	level     *slog.LevelVar
	startOnce sync.Once
}

// New creates an agent. With no options it tracks into an in-process store
// against a local collector; real deployments override the store, the
// collector URLs and the page context.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		config: DefaultConfig(),
		level:  new(slog.LevelVar),
	}
	c.level.Set(slog.LevelInfo)

	for _, opt := range opts {
		opt(c)
	}

	if c.config.VisitsURL == "" || c.config.EventsURL == "" {
		return nil, ErrNoCollectorURL
	}

	if c.log == nil {
		// Silent until Debug flips the level: the debug stream is the
		// agent's only observable failure surface.
		c.log = logger.New(
			logger.WithLevelVar(c.level),
			logger.WithFormat(logger.FormatText),
			logger.WithOutput(os.Stderr),
		)
	}

	if c.store == nil {
		c.store = store.NewMemoryStore(0)
	}
	c.store = store.WithNamespace(c.store, c.config.Namespace)

	if c.transport == nil {
		c.transport = transport.New(transport.WithLogger(c.log))
	}

	c.gate = gate.New()

	visitCfg := visit.DefaultConfig()
	visitCfg.VisitsURL = c.config.VisitsURL
	visitCfg.VisitTTL = c.config.VisitTTL
	visitCfg.VisitorTTL = c.config.VisitorTTL
	visitCfg.Platform = c.config.Platform
	visitCfg.LandingPage = c.config.LandingPage
	visitCfg.Referrer = c.config.Referrer
	visitCfg.ScreenWidth = c.config.ScreenWidth
	visitCfg.ScreenHeight = c.config.ScreenHeight
	c.manager = visit.New(c.store, c.transport, c.gate,
		visit.WithConfig(visitCfg),
		visit.WithLogger(c.log),
	)

	queueCfg := eventqueue.DefaultConfig()
	queueCfg.EventsURL = c.config.EventsURL
	queueCfg.Debounce = c.config.Debounce
	c.queue = eventqueue.New(c.store, c.transport, c.gate,
		eventqueue.WithConfig(queueCfg),
		eventqueue.WithLogger(c.log),
		eventqueue.WithSession(c.manager),
	)

	return c, nil
}

// Start runs session establishment and rehydrates the persisted event
// queue. Establishment goes first, so no event delivery can complete before
// the session exists on the collector. Start is safe to call more than
// once; only the first call does anything.
func (c *Client) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		if value, err := c.store.Get(ctx, debugKey); err == nil && value != "" {
			c.level.Set(slog.LevelDebug)
		}

		c.manager.Establish(ctx)
		c.queue.Rehydrate(ctx)
	})
}

// Track records an event. Delivery is asynchronous and best-effort; Track
// never reports delivery success or failure.
func (c *Client) Track(ctx context.Context, name string, properties Properties) {
	c.queue.Enqueue(ctx, name, properties)
}

// TrackView records a $view event carrying the page context the host
// supplied at construction.
func (c *Client) TrackView(ctx context.Context) {
	c.Track(ctx, "$view", Properties{
		"url":   c.config.LandingPage,
		"title": c.config.PageTitle,
		"page":  c.page(),
	})
}

// VisitID returns the current visit token, or an empty string when no visit
// is active.
func (c *Client) VisitID(ctx context.Context) string {
	return c.manager.VisitID(ctx)
}

// VisitorID returns the durable visitor token, or an empty string when
// absent.
func (c *Client) VisitorID(ctx context.Context) string {
	return c.manager.VisitorID(ctx)
}

// Invalidate forces the next session establishment to start a fresh visit
// while keeping the visitor identity.
func (c *Client) Invalidate(ctx context.Context) error {
	return c.manager.Invalidate(ctx)
}

// Reset deletes the visit token, visitor token, invalidation marker and the
// persisted event queue. Used for explicit opt-out and tests.
func (c *Client) Reset(ctx context.Context) error {
	if err := c.manager.Reset(ctx); err != nil {
		return err
	}
	return c.queue.Clear(ctx)
}

// Debug toggles the verbose log stream. The toggle persists across runs and
// has no effect on delivery behavior.
func (c *Client) Debug(ctx context.Context, enabled bool) error {
	if !enabled {
		c.level.Set(slog.LevelInfo)
		return c.store.Delete(ctx, debugKey)
	}

	c.level.Set(slog.LevelDebug)
	return c.store.Set(ctx, debugKey, "t", debugTTL)
}

// page returns the configured page override, falling back to the landing
// page path.
func (c *Client) page() string {
	if c.config.Page != "" {
		return c.config.Page
	}
	if u, err := url.Parse(c.config.LandingPage); err == nil {
		return u.Path
	}
	return ""
}
