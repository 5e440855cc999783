package ingredient

import (
	"log/slog"

	"larder/internal/ingredient/handler"
	"larder/internal/ingredient/service"
)

// Service manages the ingredient catalog and search.
type Service = service.Service

// Handler wires HTTP endpoints to the ingredient service.
type Handler = handler.Handler

// NewService constructs the ingredient service with required dependencies.
func NewService(ingredients service.IngredientStore, categories service.CategoryStore, authorizer service.Authorizer, opts ...service.Option) *Service {
	return service.New(ingredients, categories, authorizer, opts...)
}

// NewHandler constructs an HTTP handler for ingredient routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
