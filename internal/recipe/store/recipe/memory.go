// Package recipe provides recipe persistence.
package recipe

import (
	"context"
	"sort"
	"sync"

	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	recipes map[id.RecipeID]models.Recipe
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{recipes: make(map[id.RecipeID]models.Recipe)}
}

func (s *InMemoryStore) Create(_ context.Context, recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[recipe.ID]; ok {
		return sentinel.ErrConflict
	}
	s.recipes[recipe.ID] = *recipe
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, recipeID id.RecipeID) (*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if recipe, ok := s.recipes[recipeID]; ok {
		return &recipe, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Recipe
	for _, recipe := range s.recipes {
		if recipe.KitchenID == kitchenID {
			r := recipe
			result = append(result, &r)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result, nil
}

func (s *InMemoryStore) Update(_ context.Context, recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[recipe.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.recipes[recipe.ID] = *recipe
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, recipeID id.RecipeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[recipeID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.recipes, recipeID)
	return nil
}
