// Package pantryitem persists pantry inventory rows. Both implementations
// enforce the one-ingredient-per-kitchen invariant atomically.
package pantryitem

import (
	"context"
	"sort"
	"sync"

	"larder/internal/pantry/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type pairKey struct {
	kitchen    id.KitchenID
	ingredient id.IngredientID
}

type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[id.PantryItemID]models.PantryItem
	byPair map[pairKey]id.PantryItemID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[id.PantryItemID]models.PantryItem),
		byPair: make(map[pairKey]id.PantryItemID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, item *models.PantryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{item.KitchenID, item.IngredientID}
	if _, ok := s.byPair[key]; ok {
		return sentinel.ErrConflict
	}
	if _, ok := s.byID[item.ID]; ok {
		return sentinel.ErrConflict
	}
	s.byID[item.ID] = *item
	s.byPair[key] = item.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, itemID id.PantryItemID) (*models.PantryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.byID[itemID]; ok {
		return &item, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]*models.PantryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.PantryItem
	for _, item := range s.byID {
		if item.KitchenID == kitchenID {
			i := item
			result = append(result, &i)
		}
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].ID.String() < result[b].ID.String()
	})
	return result, nil
}

func (s *InMemoryStore) Update(_ context.Context, item *models.PantryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[item.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.byID[item.ID] = *item
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, itemID id.PantryItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[itemID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byID, itemID)
	delete(s.byPair, pairKey{item.KitchenID, item.IngredientID})
	return nil
}
