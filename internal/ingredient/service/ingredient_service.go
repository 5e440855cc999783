package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"larder/internal/ingredient/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/sentinel"
	"larder/pkg/requestcontext"
)

// IngredientPatch carries a field-level partial update.
type IngredientPatch struct {
	Name       *string        `json:"name"`
	Public     *bool          `json:"public"`
	CategoryID *id.CategoryID `json:"category_id"`
}

// CreateIngredient adds an ingredient to the catalog. Kitchen-private
// ingredients require membership of that kitchen; public ones just an
// authenticated principal.
func (s *Service) CreateIngredient(ctx context.Context, actor id.PrincipalID, name string, public bool, kitchenID *id.KitchenID, categoryID *id.CategoryID) (*models.Ingredient, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	if kitchenID != nil {
		if err := s.authorizer.RequireMembership(ctx, actor, *kitchenID); err != nil {
			return nil, err
		}
	}
	if categoryID != nil {
		if _, err := s.findCategory(ctx, *categoryID); err != nil {
			return nil, err
		}
	}

	ingredient, err := models.NewIngredient(id.IngredientID(uuid.New()), name, public, kitchenID, categoryID, actor, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	if err := s.ingredients.Create(ctx, ingredient); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create ingredient")
	}

	s.invalidateCache(ctx)
	if s.metrics != nil {
		s.metrics.IngredientsCreated.Inc()
	}
	return ingredient, nil
}

// GetIngredient returns an ingredient. Public rows are readable by anyone
// authenticated; private rows only by members of their kitchen.
func (s *Service) GetIngredient(ctx context.Context, actor id.PrincipalID, ingredientID id.IngredientID) (*models.Ingredient, error) {
	ingredient, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if !ingredient.Public {
		if err := s.authorizer.RequireMembership(ctx, actor, *ingredient.KitchenID); err != nil {
			return nil, err
		}
	}
	return ingredient, nil
}

// UpdateIngredient applies a partial update. Only the creator may edit;
// system-seeded ingredients have no creator and are immutable.
func (s *Service) UpdateIngredient(ctx context.Context, actor id.PrincipalID, ingredientID id.IngredientID, patch IngredientPatch) (*models.Ingredient, error) {
	ingredient, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if err := s.requireIngredientCreator(actor, ingredient); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		ingredient.Name = *patch.Name
	}
	if patch.Public != nil {
		ingredient.Public = *patch.Public
	}
	if patch.CategoryID != nil {
		if _, err := s.findCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
		ingredient.CategoryID = patch.CategoryID
	}
	// Re-validate post-merge through the constructor rules.
	if _, err := models.NewIngredient(ingredient.ID, ingredient.Name, ingredient.Public, ingredient.KitchenID, ingredient.CategoryID, *ingredient.CreatedBy, ingredient.CreatedAt); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.ingredients.Update(ctx, ingredient); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update ingredient")
	}
	s.invalidateCache(ctx)
	return ingredient, nil
}

// DeleteIngredient removes an ingredient, creator-only.
func (s *Service) DeleteIngredient(ctx context.Context, actor id.PrincipalID, ingredientID id.IngredientID) error {
	ingredient, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return err
	}
	if err := s.requireIngredientCreator(actor, ingredient); err != nil {
		return err
	}
	if err := s.ingredients.Delete(ctx, ingredientID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete ingredient")
	}
	s.invalidateCache(ctx)
	return nil
}

// ListByKitchen returns the kitchen's private ingredient catalog,
// member-gated.
func (s *Service) ListByKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Ingredient, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	ingredients, err := s.ingredients.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ingredients")
	}
	return ingredients, nil
}

// CreateCategory adds a category, kitchen-scoped or global.
func (s *Service) CreateCategory(ctx context.Context, actor id.PrincipalID, name string, kitchenID *id.KitchenID) (*models.Category, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	if kitchenID != nil {
		if err := s.authorizer.RequireMembership(ctx, actor, *kitchenID); err != nil {
			return nil, err
		}
	}
	category, err := models.NewCategory(id.CategoryID(uuid.New()), name, kitchenID, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create category")
	}
	return category, nil
}

// ListCategories returns the kitchen's categories plus global ones,
// member-gated.
func (s *Service) ListCategories(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Category, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	categories, err := s.categories.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list categories")
	}
	return categories, nil
}

func (s *Service) findIngredient(ctx context.Context, ingredientID id.IngredientID) (*models.Ingredient, error) {
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "ingredient id is required")
	}
	ingredient, err := s.ingredients.FindByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "ingredient not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ingredient")
	}
	return ingredient, nil
}

func (s *Service) findCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	if categoryID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "category id is required")
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "category not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load category")
	}
	return category, nil
}

func (s *Service) requireIngredientCreator(actor id.PrincipalID, ingredient *models.Ingredient) error {
	creator := id.PrincipalID{}
	if ingredient.CreatedBy != nil {
		creator = *ingredient.CreatedBy
	}
	return s.authorizer.RequireCreator(actor, creator)
}
