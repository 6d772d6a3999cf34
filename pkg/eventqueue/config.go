package eventqueue

import "time"

// Config holds event queue configuration.
type Config struct {
	// EventsURL is the collector endpoint events are posted to, one event
	// per request.
	EventsURL string `env:"BEACON_EVENTS_URL" envDefault:"http://localhost:8080/ahoy/events"`

	// StorageKey names the durable-store entry holding the serialized queue.
	StorageKey string `env:"BEACON_EVENTS_KEY" envDefault:"beacon_events"`

	// StorageTTL is the rolling expiry of the persisted queue, refreshed on
	// every mutation. Short on purpose: the mirror only needs to survive a
	// reload, not accumulate stale events forever.
	StorageTTL time.Duration `env:"BEACON_EVENTS_TTL" envDefault:"1m"`

	// Debounce delays the first delivery attempt after Enqueue so an event
	// raised right before navigation still gets persisted and a chance to
	// ship. It does not batch events.
	Debounce time.Duration `env:"BEACON_DEBOUNCE" envDefault:"1s"`
}

// DefaultConfig returns default queue configuration.
func DefaultConfig() Config {
	return Config{
		EventsURL:  "http://localhost:8080/ahoy/events",
		StorageKey: "beacon_events",
		StorageTTL: time.Minute,
		Debounce:   time.Second,
	}
}
