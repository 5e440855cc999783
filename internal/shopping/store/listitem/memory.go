// Package listitem persists shopping list items. Both implementations enforce
// the one-ingredient-per-list invariant atomically.
package listitem

import (
	"context"
	"sort"
	"sync"

	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type pairKey struct {
	list       id.ListID
	ingredient id.IngredientID
}

type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[id.ListItemID]models.ListItem
	byPair map[pairKey]id.ListItemID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[id.ListItemID]models.ListItem),
		byPair: make(map[pairKey]id.ListItemID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, item *models.ListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{item.ListID, item.IngredientID}
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

func (s *InMemoryStore) FindByID(_ context.Context, itemID id.ListItemID) (*models.ListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.byID[itemID]; ok {
		return &item, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByList(_ context.Context, listID id.ListID) ([]*models.ListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.ListItem
	for _, item := range s.byID {
		if item.ListID == listID {
			i := item
			result = append(result, &i)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].SortOrder < result[b].SortOrder })
	return result, nil
}

func (s *InMemoryStore) MaxSortOrder(_ context.Context, listID id.ListID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, item := range s.byID {
		if item.ListID == listID && item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (s *InMemoryStore) Update(_ context.Context, item *models.ListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[item.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.byID[item.ID] = *item
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, itemID id.ListItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[itemID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byID, itemID)
	delete(s.byPair, pairKey{item.ListID, item.IngredientID})
	return nil
}
