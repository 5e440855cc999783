package memory

import (
	"context"
	"sync"

	id "larder/pkg/domain"
	audit "larder/pkg/platform/audit"
)

// InMemoryStore keeps emitted events grouped by kitchen. Used in tests and
// as the dev-mode sink when Kafka is not configured.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.KitchenID][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.KitchenID][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.KitchenID] = append(s.events[event.KitchenID], event)
	return nil
}

func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[kitchenID]...), nil
}

// ListAll returns all events across kitchens.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []audit.Event
	for _, events := range s.events {
		all = append(all, events...)
	}
	return all, nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.KitchenID][]audit.Event)
}
