// Package service orchestrates kitchen lifecycle, membership invitations,
// and the permission checks every other module builds on.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	kitchenmetrics "larder/internal/kitchen/metrics"
	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	audit "larder/pkg/platform/audit"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// KitchenStore persists kitchens.
type KitchenStore interface {
	Create(ctx context.Context, kitchen *models.Kitchen) error
	FindByID(ctx context.Context, kitchenID id.KitchenID) (*models.Kitchen, error)
	FindByShareToken(ctx context.Context, token uuid.UUID) (*models.Kitchen, error)
	Update(ctx context.Context, kitchen *models.Kitchen) error
	// Delete removes the kitchen; nested rows cascade at the storage layer.
	Delete(ctx context.Context, kitchenID id.KitchenID) error
}

// MembershipStore persists memberships. Create must enforce the
// (kitchen, principal) uniqueness invariant atomically and return
// sentinel.ErrConflict on violation; services never pre-check.
type MembershipStore interface {
	Create(ctx context.Context, membership *models.Membership) error
	FindByID(ctx context.Context, membershipID id.MembershipID) (*models.Membership, error)
	FindByKitchenAndPrincipal(ctx context.Context, kitchenID id.KitchenID, principalID id.PrincipalID) (*models.Membership, error)
	ListByKitchen(ctx context.Context, kitchenID id.KitchenID) ([]*models.Membership, error)
	ListByPrincipal(ctx context.Context, principalID id.PrincipalID) ([]*models.Membership, error)
	Update(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, membershipID id.MembershipID) error
	// DeleteByKitchen removes every membership of a kitchen. Deleting none
	// is not an error.
	DeleteByKitchen(ctx context.Context, kitchenID id.KitchenID) error
}

// PrincipalDirectory resolves invitee identities. Backed by the external
// identity subsystem.
type PrincipalDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.Principal, error)
	FindByID(ctx context.Context, principalID id.PrincipalID) (*models.Principal, error)
}

// AuditPublisher receives audit events; nil disables publishing.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates kitchen and membership management.
type Service struct {
	kitchens    KitchenStore
	memberships MembershipStore
	directory   PrincipalDirectory
	evaluator   *Evaluator

	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *kitchenmetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

func WithMetrics(m *kitchenmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
		s.evaluator.metrics = m
	}
}

// New constructs a Service.
func New(kitchens KitchenStore, memberships MembershipStore, directory PrincipalDirectory, opts ...Option) *Service {
	s := &Service{
		kitchens:    kitchens,
		memberships: memberships,
		directory:   directory,
		evaluator:   NewEvaluator(memberships),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Permissions exposes the evaluator for other modules to authorize against.
func (s *Service) Permissions() *Evaluator {
	return s.evaluator
}
