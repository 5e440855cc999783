package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	ingredientmodels "larder/internal/ingredient/models"
	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/ordering"
	"larder/pkg/platform/sentinel"
)

// RecipeIngredientPatch carries a field-level partial update: only non-nil
// fields overwrite the stored row.
type RecipeIngredientPatch struct {
	Quantity  *float64 `json:"quantity"`
	Unit      *string  `json:"unit"`
	Note      *string  `json:"note"`
	SortOrder *int     `json:"sort_order"`
}

// RecipeStepPatch carries a field-level partial update.
type RecipeStepPatch struct {
	Body      *string `json:"body"`
	SortOrder *int    `json:"sort_order"`
}

// AddIngredient appends an ingredient to the recipe, creator-only. The sort
// position is derived from the current maximum; a positive requestedSort
// overrides it, non-positive requests are ignored. Duplicate ingredients in
// one recipe fail with a conflict and leave the existing row unmodified.
func (s *Service) AddIngredient(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID, ingredientID id.IngredientID, quantity float64, unit, note string, requestedSort int) (*models.RecipeIngredient, error) {
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "ingredient id is required")
	}
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}
	if err := s.requireVisibleIngredient(ctx, ingredientID, recipe.KitchenID); err != nil {
		return nil, err
	}

	max, err := s.items.MaxSortOrder(ctx, recipeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to derive sort order")
	}
	item, err := models.NewRecipeIngredient(id.RecipeIngredientID(uuid.New()), recipeID, ingredientID,
		quantity, unit, note, ordering.Next(max, requestedSort))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.items.Create(ctx, item); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "ingredient is already in the recipe")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add ingredient")
	}
	if s.metrics != nil {
		s.metrics.IngredientsAdded.Inc()
	}
	return item, nil
}

// UpdateIngredientItem applies a partial update to a recipe ingredient row,
// creator-only. Quantity is validated post-merge.
func (s *Service) UpdateIngredientItem(ctx context.Context, actor id.PrincipalID, itemID id.RecipeIngredientID, patch RecipeIngredientPatch) (*models.RecipeIngredient, error) {
	item, recipe, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}

	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Note != nil {
		item.Note = *patch.Note
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update ingredient")
	}
	return item, nil
}

// RemoveIngredient deletes a recipe ingredient row, creator-only, and
// returns the prior value.
func (s *Service) RemoveIngredient(ctx context.Context, actor id.PrincipalID, itemID id.RecipeIngredientID) (*models.RecipeIngredient, error) {
	item, recipe, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, item.ID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove ingredient")
	}
	return item, nil
}

// ListIngredients returns the recipe's ingredient rows in sort order,
// member-gated.
func (s *Service) ListIngredients(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) ([]*models.RecipeIngredient, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, recipe.KitchenID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ingredients")
	}
	return items, nil
}

// AddStep appends a step to the recipe, creator-only. Sort handling matches
// AddIngredient; steps have no duplicate rule.
func (s *Service) AddStep(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID, body string, requestedSort int) (*models.RecipeStep, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}

	max, err := s.steps.MaxSortOrder(ctx, recipeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to derive sort order")
	}
	step, err := models.NewRecipeStep(id.RecipeStepID(uuid.New()), recipeID, body, ordering.Next(max, requestedSort))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.steps.Create(ctx, step); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add step")
	}
	if s.metrics != nil {
		s.metrics.StepsAdded.Inc()
	}
	return step, nil
}

// UpdateStep applies a partial update to a step, creator-only.
func (s *Service) UpdateStep(ctx context.Context, actor id.PrincipalID, stepID id.RecipeStepID, patch RecipeStepPatch) (*models.RecipeStep, error) {
	step, recipe, err := s.findStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}

	if patch.Body != nil {
		step.Body = *patch.Body
	}
	if patch.SortOrder != nil {
		step.SortOrder = *patch.SortOrder
	}
	if err := step.Validate(); err != nil {
		return nil, err
	}

	if err := s.steps.Update(ctx, step); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update step")
	}
	return step, nil
}

// RemoveStep deletes a step, creator-only, and returns the prior value.
func (s *Service) RemoveStep(ctx context.Context, actor id.PrincipalID, stepID id.RecipeStepID) (*models.RecipeStep, error) {
	step, recipe, err := s.findStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}
	if err := s.steps.Delete(ctx, step.ID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove step")
	}
	return step, nil
}

// ListSteps returns the recipe's steps in sort order, member-gated.
func (s *Service) ListSteps(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) ([]*models.RecipeStep, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, recipe.KitchenID); err != nil {
		return nil, err
	}
	steps, err := s.steps.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list steps")
	}
	return steps, nil
}

func (s *Service) findItem(ctx context.Context, itemID id.RecipeIngredientID) (*models.RecipeIngredient, *models.Recipe, error) {
	if itemID.IsZero() {
		return nil, nil, dErrors.New(dErrors.CodeInvalidInput, "item id is required")
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, dErrors.New(dErrors.CodeNotFound, "recipe ingredient not found")
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recipe ingredient")
	}
	recipe, err := s.findRecipe(ctx, item.RecipeID)
	if err != nil {
		return nil, nil, err
	}
	return item, recipe, nil
}

func (s *Service) findStep(ctx context.Context, stepID id.RecipeStepID) (*models.RecipeStep, *models.Recipe, error) {
	if stepID.IsZero() {
		return nil, nil, dErrors.New(dErrors.CodeInvalidInput, "step id is required")
	}
	step, err := s.steps.FindByID(ctx, stepID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, dErrors.New(dErrors.CodeNotFound, "recipe step not found")
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recipe step")
	}
	recipe, err := s.findRecipe(ctx, step.RecipeID)
	if err != nil {
		return nil, nil, err
	}
	return step, recipe, nil
}

// requireVisibleIngredient verifies the referenced ingredient exists and is
// visible from the recipe's kitchen. An invisible ingredient reads as
// nonexistent so private catalogs do not leak across kitchens.
func (s *Service) requireVisibleIngredient(ctx context.Context, ingredientID id.IngredientID, kitchenID id.KitchenID) error {
	ingredient, err := s.ingredients.FindByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "ingredient not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ingredient")
	}
	if !ingredientmodels.KitchenScope(kitchenID).Contains(ingredient) {
		return dErrors.New(dErrors.CodeNotFound, "ingredient not found")
	}
	return nil
}
