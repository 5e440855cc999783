// Package ingredient provides ingredient persistence and the scoped name
// queries the search resolver runs its tiers on.
package ingredient

import (
	"context"
	"sort"
	"strings"
	"sync"

	"larder/internal/ingredient/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu          sync.RWMutex
	ingredients map[id.IngredientID]models.Ingredient
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{ingredients: make(map[id.IngredientID]models.Ingredient)}
}

func (s *InMemoryStore) Create(_ context.Context, ingredient *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ingredients[ingredient.ID]; ok {
		return sentinel.ErrConflict
	}
	s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, ingredientID id.IngredientID) (*models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ingredient, ok := s.ingredients[ingredientID]; ok {
		return &ingredient, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, ingredient *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ingredients[ingredient.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, ingredientID id.IngredientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ingredients[ingredientID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.ingredients, ingredientID)
	return nil
}

func (s *InMemoryStore) ListByKitchen(_ context.Context, kitchenID id.KitchenID) ([]*models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Ingredient
	for _, ingredient := range s.ingredients {
		if ingredient.KitchenID != nil && *ingredient.KitchenID == kitchenID {
			i := ingredient
			result = append(result, &i)
		}
	}
	sortByName(result)
	return result, nil
}

func (s *InMemoryStore) FindByExactName(_ context.Context, scope models.Scope, name string) ([]*models.Ingredient, error) {
	return s.match(scope, func(candidate string) bool {
		return candidate == strings.ToLower(name)
	}), nil
}

func (s *InMemoryStore) FindByAllTokens(_ context.Context, scope models.Scope, tokens []string) ([]*models.Ingredient, error) {
	return s.match(scope, func(candidate string) bool {
		for _, token := range tokens {
			if !strings.Contains(candidate, strings.ToLower(token)) {
				return false
			}
		}
		return len(tokens) > 0
	}), nil
}

func (s *InMemoryStore) FindByAnyToken(_ context.Context, scope models.Scope, tokens []string) ([]*models.Ingredient, error) {
	return s.match(scope, func(candidate string) bool {
		for _, token := range tokens {
			if strings.Contains(candidate, strings.ToLower(token)) {
				return true
			}
		}
		return false
	}), nil
}

func (s *InMemoryStore) match(scope models.Scope, predicate func(loweredName string) bool) []*models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Ingredient
	for _, ingredient := range s.ingredients {
		if !scope.Contains(&ingredient) {
			continue
		}
		if predicate(strings.ToLower(ingredient.Name)) {
			i := ingredient
			result = append(result, &i)
		}
	}
	sortByName(result)
	return result
}

// sortByName keeps result ordering deterministic across map iterations.
func sortByName(ingredients []*models.Ingredient) {
	sort.Slice(ingredients, func(a, b int) bool {
		if ingredients[a].Name == ingredients[b].Name {
			return ingredients[a].ID.String() < ingredients[b].ID.String()
		}
		return ingredients[a].Name < ingredients[b].Name
	})
}
