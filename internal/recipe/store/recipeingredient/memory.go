// Package recipeingredient persists a recipe's ingredient rows. Both
// implementations enforce the one-ingredient-per-recipe invariant atomically.
package recipeingredient

import (
	"context"
	"sort"
	"sync"

	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type pairKey struct {
	recipe     id.RecipeID
	ingredient id.IngredientID
}

type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[id.RecipeIngredientID]models.RecipeIngredient
	byPair map[pairKey]id.RecipeIngredientID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[id.RecipeIngredientID]models.RecipeIngredient),
		byPair: make(map[pairKey]id.RecipeIngredientID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, item *models.RecipeIngredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{item.RecipeID, item.IngredientID}
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

func (s *InMemoryStore) FindByID(_ context.Context, itemID id.RecipeIngredientID) (*models.RecipeIngredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.byID[itemID]; ok {
		return &item, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByRecipe(_ context.Context, recipeID id.RecipeID) ([]*models.RecipeIngredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.RecipeIngredient
	for _, item := range s.byID {
		if item.RecipeID == recipeID {
			i := item
			result = append(result, &i)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].SortOrder < result[b].SortOrder })
	return result, nil
}

func (s *InMemoryStore) MaxSortOrder(_ context.Context, recipeID id.RecipeID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, item := range s.byID {
		if item.RecipeID == recipeID && item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (s *InMemoryStore) Update(_ context.Context, item *models.RecipeIngredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[item.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.byID[item.ID] = *item
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, itemID id.RecipeIngredientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[itemID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byID, itemID)
	delete(s.byPair, pairKey{item.RecipeID, item.IngredientID})
	return nil
}
