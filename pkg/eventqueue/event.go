package eventqueue

import "time"

// Properties carries arbitrary event metadata. Values must stay within the
// JSON value set (strings, numbers, booleans, nil, and nested maps/slices
// of the same) so the persisted queue round-trips losslessly.
type Properties map[string]any

// Event is one tracked action. Events are immutable after creation and leave
// the queue only when a delivery acknowledgment names their id.
type Event struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Properties Properties `json:"properties"`
	// Time is seconds since epoch, fractional.
	Time float64 `json:"time"`
}

func now() float64 {
	return float64(time.Now().UnixMilli()) / 1000
}
