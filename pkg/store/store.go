package store

import (
	"context"
	"time"
)

// Store defines the durable key-value capability the telemetry agent needs:
// named string values with an optional relative expiry. Implementations scope
// keys with a namespace so multiple agents can share one backing store.
type Store interface {
	// Get returns the value stored under name, or ErrNotFound when the key
	// is absent or expired.
	Get(ctx context.Context, name string) (string, error)

	// Set stores value under name. A positive ttl makes the entry expire
	// after that duration; a zero or negative ttl stores it without expiry.
	Set(ctx context.Context, name, value string, ttl time.Duration) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, name string) error
}
