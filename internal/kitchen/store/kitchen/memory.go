// Package kitchen provides kitchen persistence: an in-memory store for tests
// and dev, and a Postgres store for production.
package kitchen

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

// InMemoryStore keeps kitchens in a map. Favors clarity over performance.
type InMemoryStore struct {
	mu       sync.RWMutex
	kitchens map[id.KitchenID]models.Kitchen
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{kitchens: make(map[id.KitchenID]models.Kitchen)}
}

func (s *InMemoryStore) Create(_ context.Context, kitchen *models.Kitchen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kitchens[kitchen.ID]; ok {
		return sentinel.ErrConflict
	}
	s.kitchens[kitchen.ID] = *kitchen
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, kitchenID id.KitchenID) (*models.Kitchen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if kitchen, ok := s.kitchens[kitchenID]; ok {
		return &kitchen, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByShareToken(_ context.Context, token uuid.UUID) (*models.Kitchen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, kitchen := range s.kitchens {
		if kitchen.ShareToken == token {
			k := kitchen
			return &k, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, kitchen *models.Kitchen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kitchens[kitchen.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.kitchens[kitchen.ID] = *kitchen
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, kitchenID id.KitchenID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kitchens[kitchenID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.kitchens, kitchenID)
	return nil
}
