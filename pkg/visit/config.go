package visit

import "time"

// Config holds visit session configuration.
type Config struct {
	// VisitsURL is the collector endpoint visit-start payloads are posted to.
	VisitsURL string `env:"BEACON_VISITS_URL" envDefault:"http://localhost:8080/ahoy/visits"`

	// VisitKey, VisitorKey and MarkerKey name the durable-store entries the
	// manager owns. No other component reads or writes them.
	VisitKey   string `env:"BEACON_VISIT_KEY" envDefault:"beacon_visit"`
	VisitorKey string `env:"BEACON_VISITOR_KEY" envDefault:"beacon_visitor"`
	MarkerKey  string `env:"BEACON_MARKER_KEY" envDefault:"beacon_track"`

	// VisitTTL bounds one visit. The TTL is fixed-length: repeat activity
	// inside the window does not slide it.
	VisitTTL time.Duration `env:"BEACON_VISIT_TTL" envDefault:"4h"`

	// VisitorTTL bounds the device identity across visits.
	VisitorTTL time.Duration `env:"BEACON_VISITOR_TTL" envDefault:"17520h"`

	// Platform labels the host in the visit-start payload.
	Platform string `env:"BEACON_PLATFORM" envDefault:"Web"`

	// Page context reported with the visit-start payload, supplied by the
	// host application.
	LandingPage  string
	Referrer     string
	ScreenWidth  int
	ScreenHeight int
}

// DefaultConfig returns default visit configuration mirroring the classic
// web analytics lifetimes: four-hour visits, two-year visitors.
func DefaultConfig() Config {
	return Config{
		VisitsURL:  "http://localhost:8080/ahoy/visits",
		VisitKey:   "beacon_visit",
		VisitorKey: "beacon_visitor",
		MarkerKey:  "beacon_track",
		VisitTTL:   4 * time.Hour,
		VisitorTTL: 2 * 365 * 24 * time.Hour,
		Platform:   "Web",
	}
}
