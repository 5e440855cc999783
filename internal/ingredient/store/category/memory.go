// Package category provides category persistence.
package category

import (
	"context"
	"sort"
	"sync"

	"larder/internal/ingredient/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu         sync.RWMutex
	categories map[id.CategoryID]models.Category
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{categories: make(map[id.CategoryID]models.Category)}
}

func (s *InMemoryStore) Create(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.ID]; ok {
		return sentinel.ErrConflict
	}
	s.categories[category.ID] = *category
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, categoryID id.CategoryID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category, ok := s.categories[categoryID]; ok {
		return &category, nil
	}
	return nil, sentinel.ErrNotFound
}

// ListByKitchen returns the kitchen's categories together with the global
// ones.
func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Category
	for _, category := range s.categories {
		if category.KitchenID == nil || *category.KitchenID == kitchenID {
			c := category
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result, nil
}
