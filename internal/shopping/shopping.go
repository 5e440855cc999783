package shopping

import (
	"log/slog"

	"larder/internal/shopping/handler"
	"larder/internal/shopping/service"
)

// Service exposes shopping lists and their ordered item collection.
type Service = service.Service

// Handler wires HTTP endpoints to the shopping service.
type Handler = handler.Handler

// NewService constructs the shopping service with required dependencies.
func NewService(lists service.ListStore, items service.ListItemStore, ingredients service.IngredientDirectory, authorizer service.Authorizer, opts ...service.Option) *Service {
	return service.New(lists, items, ingredients, authorizer, opts...)
}

// NewHandler constructs an HTTP handler for shopping routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
