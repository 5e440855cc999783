// Package list provides shopping list persistence.
package list

import (
	"context"
	"sort"
	"sync"

	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	lists map[id.ListID]models.ShoppingList
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{lists: make(map[id.ListID]models.ShoppingList)}
}

func (s *InMemoryStore) Create(_ context.Context, list *models.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[list.ID]; ok {
		return sentinel.ErrConflict
	}
	s.lists[list.ID] = *list
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, listID id.ListID) (*models.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if list, ok := s.lists[listID]; ok {
		return &list, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]*models.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.ShoppingList
	for _, list := range s.lists {
		if list.KitchenID == kitchenID {
			l := list
			result = append(result, &l)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result, nil
}

func (s *InMemoryStore) Update(_ context.Context, list *models.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[list.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.lists[list.ID] = *list
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, listID id.ListID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[listID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.lists, listID)
	return nil
}
