package recipe

import (
	"log/slog"

	"larder/internal/recipe/handler"
	"larder/internal/recipe/service"
)

// Service exposes recipes and their ordered ingredient and step collections.
type Service = service.Service

// Handler wires HTTP endpoints to the recipe service.
type Handler = handler.Handler

// NewService constructs the recipe service with required dependencies.
func NewService(recipes service.RecipeStore, items service.RecipeIngredientStore, steps service.StepStore, ingredients service.IngredientDirectory, authorizer service.Authorizer, opts ...service.Option) *Service {
	return service.New(recipes, items, steps, ingredients, authorizer, opts...)
}

// NewHandler constructs an HTTP handler for recipe routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
