// Package step persists recipe steps. Steps carry no ingredient reference,
// so only ordering matters; duplicates are legal.
package step

import (
	"context"
	"sort"
	"sync"

	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	"larder/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	steps map[id.RecipeStepID]models.RecipeStep
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{steps: make(map[id.RecipeStepID]models.RecipeStep)}
}

func (s *InMemoryStore) Create(_ context.Context, step *models.RecipeStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.steps[step.ID]; ok {
		return sentinel.ErrConflict
	}
	s.steps[step.ID] = *step
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, stepID id.RecipeStepID) (*models.RecipeStep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if step, ok := s.steps[stepID]; ok {
		return &step, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByRecipe(_ context.Context, recipeID id.RecipeID) ([]*models.RecipeStep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.RecipeStep
	for _, step := range s.steps {
		if step.RecipeID == recipeID {
			st := step
			result = append(result, &st)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].SortOrder < result[b].SortOrder })
	return result, nil
}

func (s *InMemoryStore) MaxSortOrder(_ context.Context, recipeID id.RecipeID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, step := range s.steps {
		if step.RecipeID == recipeID && step.SortOrder > max {
			max = step.SortOrder
		}
	}
	return max, nil
}

func (s *InMemoryStore) Update(_ context.Context, step *models.RecipeStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.steps[step.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.steps[step.ID] = *step
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, stepID id.RecipeStepID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.steps[stepID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.steps, stepID)
	return nil
}
