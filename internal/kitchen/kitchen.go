package kitchen

import (
	"log/slog"

	"larder/internal/kitchen/handler"
	"larder/internal/kitchen/service"
)

// Service exposes kitchen lifecycle and membership orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the kitchen service.
type Handler = handler.Handler

// Evaluator answers membership and ownership questions; other modules
// authorize against it.
type Evaluator = service.Evaluator

// NewService constructs the kitchen service with required dependencies.
func NewService(kitchens service.KitchenStore, memberships service.MembershipStore, directory service.PrincipalDirectory, opts ...service.Option) *Service {
	return service.New(kitchens, memberships, directory, opts...)
}

// NewHandler constructs an HTTP handler for kitchen routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
