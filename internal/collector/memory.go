package collector

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage implements Storage in process memory. Used by tests and as
// the default backend when no database is configured.
type MemoryStorage struct {
	mu     sync.RWMutex
	visits map[string]Visit
	events map[string]Event
	order  []string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		visits: make(map[string]Visit),
		events: make(map[string]Event),
	}
}

// SaveVisit stores a visit keyed by its token. Re-registration of the same
// token overwrites, which makes duplicate visit-start submissions converge.
func (s *MemoryStorage) SaveVisit(ctx context.Context, visit Visit) error {
	if visit.VisitToken == "" {
		return ErrInvalidVisit
	}
	if visit.StartedAt.IsZero() {
		visit.StartedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.visits[visit.VisitToken] = visit
	s.mu.Unlock()

	return nil
}

// SaveEvents stores events, silently dropping ids already seen.
func (s *MemoryStorage) SaveEvents(ctx context.Context, events []Event) error {
	for _, event := range events {
		if event.ID == "" || event.Name == "" {
			return ErrInvalidEvent
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range events {
		if _, seen := s.events[event.ID]; seen {
			continue
		}
		s.events[event.ID] = event
		s.order = append(s.order, event.ID)
	}

	return nil
}

// Visit returns the stored visit for token.
func (s *MemoryStorage) Visit(token string) (Visit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visit, ok := s.visits[token]
	return visit, ok
}

// Events returns stored events in arrival order.
func (s *MemoryStorage) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.events[id])
	}
	return events
}
