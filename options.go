package beacon

import (
	"log/slog"
	"time"

	"github.com/beaconlabs/beacon/pkg/store"
	"github.com/beaconlabs/beacon/pkg/transport"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithConfig replaces the whole configuration.
func WithConfig(config Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithStore sets a custom durable store.
func WithStore(s store.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithTransport sets a custom transport.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithLogger sets the logger used for the debug stream. Nil loggers are
// ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCollectorURLs sets both collector endpoints.
func WithCollectorURLs(visitsURL, eventsURL string) Option {
	return func(c *Client) {
		c.config.VisitsURL = visitsURL
		c.config.EventsURL = eventsURL
	}
}

// WithVisitTTL sets the visit and visitor lifetimes.
func WithVisitTTL(visit, visitor time.Duration) Option {
	return func(c *Client) {
		c.config.VisitTTL = visit
		c.config.VisitorTTL = visitor
	}
}

// WithNamespace scopes all durable-store keys.
func WithNamespace(namespace string) Option {
	return func(c *Client) {
		c.config.Namespace = namespace
	}
}

// WithPlatform overrides the platform label.
func WithPlatform(platform string) Option {
	return func(c *Client) {
		c.config.Platform = platform
	}
}

// WithPage overrides the reported page name.
func WithPage(page string) Option {
	return func(c *Client) {
		c.config.Page = page
	}
}

// WithPageContext sets the landing page, title and referrer reported to the
// collector.
func WithPageContext(landingPage, title, referrer string) Option {
	return func(c *Client) {
		c.config.LandingPage = landingPage
		c.config.PageTitle = title
		c.config.Referrer = referrer
	}
}

// WithScreen sets the reported screen dimensions.
func WithScreen(width, height int) Option {
	return func(c *Client) {
		c.config.ScreenWidth = width
		c.config.ScreenHeight = height
	}
}

// WithDebounce sets the delay before the first delivery attempt.
func WithDebounce(d time.Duration) Option {
	return func(c *Client) {
		c.config.Debounce = d
	}
}
