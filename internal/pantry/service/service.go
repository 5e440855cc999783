// Package service manages a kitchen's pantry inventory. The collection is
// unordered and member-gated throughout; one row per ingredient is the only
// structural rule.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	ingredientmodels "larder/internal/ingredient/models"
	"larder/internal/pantry/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/sentinel"
)

// ItemStore persists pantry items. Create must enforce the
// (kitchen, ingredient) uniqueness invariant atomically and return
// sentinel.ErrConflict on violation.
type ItemStore interface {
	Create(ctx context.Context, item *models.PantryItem) error
	FindByID(ctx context.Context, itemID id.PantryItemID) (*models.PantryItem, error)
	ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.PantryItem, error)
	Update(ctx context.Context, item *models.PantryItem) error
	Delete(ctx context.Context, itemID id.PantryItemID) error
}

// IngredientDirectory resolves referenced ingredients. Backed by the
// ingredient module's store.
type IngredientDirectory interface {
	FindByID(ctx context.Context, ingredientID id.IngredientID) (*ingredientmodels.Ingredient, error)
}

// Authorizer answers the authorization questions this module needs.
// Satisfied by the kitchen module's evaluator.
type Authorizer interface {
	RequireMembership(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) error
}

// ItemPatch carries a field-level partial update. ExpiresAt uses a double
// pointer so a patch can distinguish "leave alone" (nil) from "clear the
// expiry" (pointer to nil).
type ItemPatch struct {
	Quantity  *float64    `json:"quantity"`
	Unit      *string     `json:"unit"`
	ExpiresAt **time.Time `json:"expires_at"`
}

// Service orchestrates pantry inventory.
type Service struct {
	items       ItemStore
	ingredients IngredientDirectory
	authorizer  Authorizer
	logger      *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New constructs a Service.
func New(items ItemStore, ingredients IngredientDirectory, authorizer Authorizer, opts ...Option) *Service {
	s := &Service{items: items, ingredients: ingredients, authorizer: authorizer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stocks an ingredient in the kitchen pantry, any member. A second row
// for the same ingredient conflicts; adjust the existing row instead.
func (s *Service) Add(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, ingredientID id.IngredientID, quantity float64, unit string, expiresAt *time.Time) (*models.PantryItem, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "ingredient id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	if err := s.requireVisibleIngredient(ctx, ingredientID, kitchenID); err != nil {
		return nil, err
	}

	item, err := models.NewPantryItem(id.PantryItemID(uuid.New()), kitchenID, ingredientID, quantity, unit, expiresAt)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	if err := s.items.Create(ctx, item); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "ingredient is already stocked")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add pantry item")
	}
	return item, nil
}

// Update applies a partial update to a pantry item, any member. Quantity is
// validated post-merge.
func (s *Service) Update(ctx context.Context, actor id.PrincipalID, itemID id.PantryItemID, patch ItemPatch) (*models.PantryItem, error) {
	item, err := s.findMemberItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.ExpiresAt != nil {
		item.ExpiresAt = *patch.ExpiresAt
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update pantry item")
	}
	return item, nil
}

// Remove deletes a pantry item, any member, and returns the prior value.
func (s *Service) Remove(ctx context.Context, actor id.PrincipalID, itemID id.PantryItemID) (*models.PantryItem, error) {
	item, err := s.findMemberItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, item.ID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove pantry item")
	}
	return item, nil
}

// List returns the kitchen's pantry, member-gated.
func (s *Service) List(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.PantryItem, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pantry items")
	}
	return items, nil
}

func (s *Service) findMemberItem(ctx context.Context, actor id.PrincipalID, itemID id.PantryItemID) (*models.PantryItem, error) {
	if itemID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "item id is required")
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "pantry item not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pantry item")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, item.KitchenID); err != nil {
		return nil, err
	}
	return item, nil
}

// requireVisibleIngredient verifies the referenced ingredient exists and is
// visible from the kitchen. An invisible ingredient reads as nonexistent so
// private catalogs do not leak across kitchens.
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
