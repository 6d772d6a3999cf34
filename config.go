package beacon

import "time"

// Config holds every knob the agent exposes. All fields carry env tags so a
// host can populate them through pkg/config.Load; functional options cover
// programmatic setup.
type Config struct {
	// VisitsURL and EventsURL point at the collector endpoints.
	VisitsURL string `env:"BEACON_VISITS_URL" envDefault:"http://localhost:8080/ahoy/visits"`
	EventsURL string `env:"BEACON_EVENTS_URL" envDefault:"http://localhost:8080/ahoy/events"`

	// VisitTTL bounds one visit; VisitorTTL bounds the device identity.
	VisitTTL   time.Duration `env:"BEACON_VISIT_TTL" envDefault:"4h"`
	VisitorTTL time.Duration `env:"BEACON_VISITOR_TTL" envDefault:"17520h"`

	// Namespace scopes all durable-store keys, the way a cookie domain
	// scopes a browser agent's cookies. Empty means unscoped.
	Namespace string `env:"BEACON_NAMESPACE"`

	// Platform labels the host in the visit-start payload.
	Platform string `env:"BEACON_PLATFORM" envDefault:"Web"`

	// Page overrides the page name reported by TrackView; when empty the
	// landing page path is used.
	Page string `env:"BEACON_PAGE"`

	// Page context reported to the collector, supplied by the host.
	LandingPage  string `env:"BEACON_LANDING_PAGE"`
	PageTitle    string `env:"BEACON_PAGE_TITLE"`
	Referrer     string `env:"BEACON_REFERRER"`
	ScreenWidth  int    `env:"BEACON_SCREEN_WIDTH"`
	ScreenHeight int    `env:"BEACON_SCREEN_HEIGHT"`

	// Debounce delays the first delivery attempt after Track.
	Debounce time.Duration `env:"BEACON_DEBOUNCE" envDefault:"1s"`
}

// DefaultConfig returns the agent defaults: four-hour visits, two-year
// visitors, one-second debounce, local collector.
func DefaultConfig() Config {
	return Config{
		VisitsURL:  "http://localhost:8080/ahoy/visits",
		EventsURL:  "http://localhost:8080/ahoy/events",
		VisitTTL:   4 * time.Hour,
		VisitorTTL: 2 * 365 * 24 * time.Hour,
		Platform:   "Web",
		Debounce:   time.Second,
	}
}
