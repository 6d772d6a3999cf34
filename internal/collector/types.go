package collector

import "time"

// Visit is the visit-start payload as it arrives on the wire. Field names
// are the ahoy-compatible contract shared with the agent.
type Visit struct {
	VisitToken   string `json:"visit_token"`
	VisitorToken string `json:"visitor_token"`
	Platform     string `json:"platform"`
	LandingPage  string `json:"landing_page"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	Referrer     string `json:"referrer,omitempty"`

	StartedAt time.Time `json:"-"`
}

// Event is one tracked event from the agent's delivery queue. The agent
// delivers at-least-once, so storage backends must dedupe by id.
type Event struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"`
	// Time is seconds since epoch, fractional.
	Time float64 `json:"time"`
}

// OccurredAt converts the wire timestamp into a time.Time.
func (e Event) OccurredAt() time.Time {
	seconds := int64(e.Time)
	nanos := int64((e.Time - float64(seconds)) * 1e9)
	return time.Unix(seconds, nanos).UTC()
}
