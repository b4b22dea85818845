package memory

import (
	"context"
	"sync"

	audit "verifydesk/pkg/platform/audit"
)

// DefaultCapacity bounds how many events the store retains.
const DefaultCapacity = 1000

// InMemoryStore keeps the most recent events in insertion order. Older events
// are dropped once capacity is reached.
type InMemoryStore struct {
	mu       sync.RWMutex
	events   []audit.Event
	capacity int
}

func NewInMemoryStore(capacity int) *InMemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryStore{capacity: capacity}
}

// Emit appends event, evicting the oldest when full.
func (s *InMemoryStore) Emit(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == s.capacity {
		s.events = append(s.events[:0:0], s.events[1:]...)
	}
	s.events = append(s.events, event)
	return nil
}

// ListRecent returns up to limit events, most recent first. A non-positive
// limit returns everything retained.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]audit.Event, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
