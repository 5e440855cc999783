package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	audit "larder/pkg/platform/audit"
	"larder/pkg/platform/sentinel"
	"larder/pkg/requestcontext"
)

// RecipePatch carries a field-level partial update.
type RecipePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Servings    *int    `json:"servings"`
}

// CreateRecipe creates a recipe in a kitchen. Any member may create; the
// creator becomes the only principal allowed to modify it.
func (s *Service) CreateRecipe(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, name, description string, servings int) (*models.Recipe, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}

	recipe, err := models.NewRecipe(id.RecipeID(uuid.New()), kitchenID, name, description, servings, actor, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create recipe")
	}

	s.emitAudit(ctx, audit.EventRecipeCreated, kitchenID, actor)
	if s.metrics != nil {
		s.metrics.RecipesCreated.Inc()
	}
	return recipe, nil
}

// GetRecipe returns a recipe to any member of its kitchen.
func (s *Service) GetRecipe(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) (*models.Recipe, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, recipe.KitchenID); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListRecipes returns the kitchen's recipes, member-gated.
func (s *Service) ListRecipes(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Recipe, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	recipes, err := s.recipes.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list recipes")
	}
	return recipes, nil
}

// UpdateRecipe applies a partial update, creator-only.
func (s *Service) UpdateRecipe(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID, patch RecipePatch) (*models.Recipe, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	// Re-validate post-merge through the constructor rules.
	if _, err := models.NewRecipe(recipe.ID, recipe.KitchenID, recipe.Name, recipe.Description, recipe.Servings, recipe.CreatedBy, recipe.CreatedAt); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update recipe")
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe and its nested rows, creator-only.
func (s *Service) DeleteRecipe(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) error {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if err := s.authorizer.RequireCreator(actor, recipe.CreatedBy); err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete recipe")
	}
	s.emitAudit(ctx, audit.EventRecipeDeleted, recipe.KitchenID, actor)
	return nil
}

func (s *Service) findRecipe(ctx context.Context, recipeID id.RecipeID) (*models.Recipe, error) {
	if recipeID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "recipe id is required")
	}
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "recipe not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recipe")
	}
	return recipe, nil
}

// emitAudit logs the action and forwards it to the audit publisher when one
// is configured. Audit failures never fail the domain operation.
func (s *Service) emitAudit(ctx context.Context, action audit.AuditEvent, kitchenID id.KitchenID, actor id.PrincipalID) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"event", string(action),
			"log_type", "audit",
			"kitchen_id", kitchenID.String(),
			"principal_id", actor.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		KitchenID:   kitchenID,
		PrincipalID: actor,
		Action:      string(action),
	})
}
