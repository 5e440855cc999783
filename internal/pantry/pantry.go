package pantry

import (
	"log/slog"

	"larder/internal/pantry/handler"
	"larder/internal/pantry/service"
)

// Service exposes the kitchen pantry inventory.
type Service = service.Service

// Handler wires HTTP endpoints to the pantry service.
type Handler = handler.Handler

// NewService constructs the pantry service with required dependencies.
func NewService(items service.ItemStore, ingredients service.IngredientDirectory, authorizer service.Authorizer, opts ...service.Option) *Service {
	return service.New(items, ingredients, authorizer, opts...)
}

// NewHandler constructs an HTTP handler for pantry routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
