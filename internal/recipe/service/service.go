// Package service manages recipes and their two ordered collections,
// ingredients and steps. Reads are member-gated; writes are creator-only,
// a deliberate split from the any-member-writes rule of shopping lists and
// pantry inventory.
package service

import (
	"context"
	"log/slog"

	ingredientmodels "larder/internal/ingredient/models"
	recipemetrics "larder/internal/recipe/metrics"
	"larder/internal/recipe/models"
	id "larder/pkg/domain"
	audit "larder/pkg/platform/audit"
)

// RecipeStore persists recipes.
type RecipeStore interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	FindByID(ctx context.Context, recipeID id.RecipeID) (*models.Recipe, error)
	ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, recipeID id.RecipeID) error
}

// RecipeIngredientStore persists a recipe's ingredient rows. Create must
// enforce the (recipe, ingredient) uniqueness invariant atomically and return
// sentinel.ErrConflict on violation.
type RecipeIngredientStore interface {
	Create(ctx context.Context, item *models.RecipeIngredient) error
	FindByID(ctx context.Context, itemID id.RecipeIngredientID) (*models.RecipeIngredient, error)
	ListByRecipe(ctx context.Context, recipeID id.RecipeID) ([]*models.RecipeIngredient, error)
	MaxSortOrder(ctx context.Context, recipeID id.RecipeID) (int, error)
	Update(ctx context.Context, item *models.RecipeIngredient) error
	Delete(ctx context.Context, itemID id.RecipeIngredientID) error
}

// StepStore persists recipe steps.
type StepStore interface {
	Create(ctx context.Context, step *models.RecipeStep) error
	FindByID(ctx context.Context, stepID id.RecipeStepID) (*models.RecipeStep, error)
	ListByRecipe(ctx context.Context, recipeID id.RecipeID) ([]*models.RecipeStep, error)
	MaxSortOrder(ctx context.Context, recipeID id.RecipeID) (int, error)
	Update(ctx context.Context, step *models.RecipeStep) error
	Delete(ctx context.Context, stepID id.RecipeStepID) error
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
	RequireCreator(principalID, creatorID id.PrincipalID) error
}

// AuditPublisher receives audit events; nil disables publishing.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates recipe management.
type Service struct {
	recipes     RecipeStore
	items       RecipeIngredientStore
	steps       StepStore
	ingredients IngredientDirectory
	authorizer  Authorizer

	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *recipemetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

func WithMetrics(m *recipemetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(recipes RecipeStore, items RecipeIngredientStore, steps StepStore, ingredients IngredientDirectory, authorizer Authorizer, opts ...Option) *Service {
	s := &Service{
		recipes:     recipes,
		items:       items,
		steps:       steps,
		ingredients: ingredients,
		authorizer:  authorizer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
