// Package service manages the ingredient catalog and resolves free-text
// ingredient queries through progressive relaxation.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	ingredientmetrics "larder/internal/ingredient/metrics"
	"larder/internal/ingredient/models"
	id "larder/pkg/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// IngredientStore persists ingredients and runs the scoped tier queries.
type IngredientStore interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	FindByID(ctx context.Context, ingredientID id.IngredientID) (*models.Ingredient, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, ingredientID id.IngredientID) error
	ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Ingredient, error)

	FindByExactName(ctx context.Context, scope models.Scope, name string) ([]*models.Ingredient, error)
	FindByAllTokens(ctx context.Context, scope models.Scope, tokens []string) ([]*models.Ingredient, error)
	FindByAnyToken(ctx context.Context, scope models.Scope, tokens []string) ([]*models.Ingredient, error)
}

// CategoryStore persists categories.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Category, error)
}

// SearchCache holds search results between mutations. A nil cache disables
// caching.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]*models.Ingredient, bool)
	Set(ctx context.Context, key string, ingredients []*models.Ingredient)
	Invalidate(ctx context.Context)
}

// Authorizer answers the two authorization questions this module needs.
// Satisfied by the kitchen module's evaluator.
type Authorizer interface {
	RequireMembership(ctx context.Context, principalID id.PrincipalID, kitchenID id.KitchenID) error
	RequireCreator(principalID, creatorID id.PrincipalID) error
}

// Service manages the ingredient catalog.
type Service struct {
	ingredients IngredientStore
	categories  CategoryStore
	authorizer  Authorizer

	cache   SearchCache
	flight  singleflight.Group
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics *ingredientmetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithCache(cache SearchCache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithMetrics(m *ingredientmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(ingredients IngredientStore, categories CategoryStore, authorizer Authorizer, opts ...Option) *Service {
	s := &Service{
		ingredients: ingredients,
		categories:  categories,
		authorizer:  authorizer,
		tracer:      otel.Tracer("larder/internal/ingredient"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
