package beacon

import "errors"

var (
	// ErrNoCollectorURL indicates the agent was configured without collector endpoints
	ErrNoCollectorURL = errors.New("beacon.no_collector_url")
)
