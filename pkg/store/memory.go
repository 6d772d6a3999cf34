package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore implements Store using in-process memory. Entries honor their
// TTL on read; an optional background goroutine sweeps expired entries so the
// map does not grow unbounded between reads.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ticker  *time.Ticker
	done    chan struct{}
}

// NewMemoryStore creates an in-memory store. A positive cleanupInterval
// starts a background sweep of expired entries; pass 0 to disable it.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		go s.cleanupLoop()
	}

	return s
}

// Get returns the value stored under name.
func (s *MemoryStore) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	entry, exists := s.entries[name]
	s.mu.RUnlock()

	if !exists {
		return "", ErrNotFound
	}

	if entry.expired(time.Now()) {
		s.mu.Lock()
		delete(s.entries, name)
		s.mu.Unlock()
		return "", ErrNotFound
	}

	return entry.value, nil
}

// Set stores value under name with an optional expiry.
func (s *MemoryStore) Set(ctx context.Context, name, value string, ttl time.Duration) error {
	if name == "" {
		return ErrEmptyKey
	}

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[name] = entry
	s.mu.Unlock()

	return nil
}

// Delete removes the key.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	delete(s.entries, name)
	s.mu.Unlock()

	return nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
	}
	return nil
}

// cleanupLoop runs periodic removal of expired entries
func (s *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-s.ticker.C:
			s.deleteExpired()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) deleteExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, name)
		}
	}
}
