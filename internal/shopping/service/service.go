// Package service manages shopping lists and their ordered item collection.
// Every write here is any-member: the whole kitchen shares its lists, unlike
// recipes where nested rows are creator-only.
package service

import (
	"context"
	"log/slog"

	ingredientmodels "larder/internal/ingredient/models"
	shoppingmetrics "larder/internal/shopping/metrics"
	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	audit "larder/pkg/platform/audit"
)

// ListStore persists shopping lists.
type ListStore interface {
	Create(ctx context.Context, list *models.ShoppingList) error
	FindByID(ctx context.Context, listID id.ListID) (*models.ShoppingList, error)
	ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.ShoppingList, error)
	Update(ctx context.Context, list *models.ShoppingList) error
	Delete(ctx context.Context, listID id.ListID) error
}

// ListItemStore persists list items. Create must enforce the
// (list, ingredient) uniqueness invariant atomically and return
// sentinel.ErrConflict on violation.
type ListItemStore interface {
	Create(ctx context.Context, item *models.ListItem) error
	FindByID(ctx context.Context, itemID id.ListItemID) (*models.ListItem, error)
	ListByList(ctx context.Context, listID id.ListID) ([]*models.ListItem, error)
	MaxSortOrder(ctx context.Context, listID id.ListID) (int, error)
	Update(ctx context.Context, item *models.ListItem) error
	Delete(ctx context.Context, itemID id.ListItemID) error
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

// AuditPublisher receives audit events; nil disables publishing.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates shopping list management.
type Service struct {
	lists       ListStore
	items       ListItemStore
	ingredients IngredientDirectory
	authorizer  Authorizer

	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *shoppingmetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

func WithMetrics(m *shoppingmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(lists ListStore, items ListItemStore, ingredients IngredientDirectory, authorizer Authorizer, opts ...Option) *Service {
	s := &Service{
		lists:       lists,
		items:       items,
		ingredients: ingredients,
		authorizer:  authorizer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
