package collector

import (
	"context"
	"errors"
)

var (
	// ErrInvalidVisit indicates a visit payload without a visit token
	ErrInvalidVisit = errors.New("collector.invalid_visit")

	// ErrInvalidEvent indicates an event without an id or name
	ErrInvalidEvent = errors.New("collector.invalid_event")
)

// Storage persists visits and events. SaveEvents must be idempotent per
// event id: the agent redelivers unacknowledged events after restarts, so
// duplicates are expected, not exceptional.
type Storage interface {
	SaveVisit(ctx context.Context, visit Visit) error
	SaveEvents(ctx context.Context, events []Event) error
}
