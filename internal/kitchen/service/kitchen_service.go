package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"larder/internal/kitchen/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	audit "larder/pkg/platform/audit"
	"larder/pkg/platform/sentinel"
	"larder/pkg/requestcontext"
)

// KitchenPatch carries a field-level partial update: only non-nil fields
// overwrite the stored row.
type KitchenPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateKitchen creates a kitchen and its founding owner membership. The
// creating principal is always the first, owning member.
func (s *Service) CreateKitchen(ctx context.Context, actor id.PrincipalID, name, description string) (*models.Kitchen, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}

	now := requestcontext.Now(ctx)
	kitchen, err := models.NewKitchen(id.KitchenID(uuid.New()), name, description, actor, now)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}

	if err := s.kitchens.Create(ctx, kitchen); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create kitchen")
	}

	owner := models.NewOwnerMembership(id.MembershipID(uuid.New()), kitchen.ID, actor, now)
	if err := s.memberships.Create(ctx, owner); err != nil {
		// Roll back the half-created kitchen so no kitchen exists without an
		// owner membership.
		_ = s.kitchens.Delete(ctx, kitchen.ID)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create owner membership")
	}

	s.emitAudit(ctx, audit.EventKitchenCreated, kitchen.ID, actor, id.PrincipalID{}, "")
	s.incrementKitchensCreated()
	return kitchen, nil
}

// GetKitchen returns a kitchen to one of its members. Nonexistent ids get
// not-found; existing kitchens the principal is not a member of get a
// permission error, uniformly.
func (s *Service) GetKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) (*models.Kitchen, error) {
	kitchen, err := s.findKitchen(ctx, kitchenID)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	return kitchen, nil
}

// ListKitchens returns every kitchen the principal belongs to, any state.
func (s *Service) ListKitchens(ctx context.Context, actor id.PrincipalID) ([]*models.Kitchen, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	memberships, err := s.memberships.ListByPrincipal(ctx, actor)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list memberships")
	}

	kitchens := make([]*models.Kitchen, 0, len(memberships))
	for _, m := range memberships {
		kitchen, err := s.kitchens.FindByID(ctx, m.KitchenID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				continue
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load kitchen")
		}
		kitchens = append(kitchens, kitchen)
	}
	return kitchens, nil
}

// UpdateKitchen applies a partial update. Any member may rename or
// re-describe the kitchen; omitted fields keep their stored values.
func (s *Service) UpdateKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, patch KitchenPatch) (*models.Kitchen, error) {
	kitchen, err := s.findKitchen(ctx, kitchenID)
	if err != nil {
		return nil, err
	}
	if err := s.evaluator.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		kitchen.Name = *patch.Name
	}
	if patch.Description != nil {
		kitchen.Description = *patch.Description
	}
	// Re-validate post-merge through the constructor rules.
	if _, err := models.NewKitchen(kitchen.ID, kitchen.Name, kitchen.Description, kitchen.CreatedBy, kitchen.CreatedAt); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.kitchens.Update(ctx, kitchen); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update kitchen")
	}
	s.emitAudit(ctx, audit.EventKitchenUpdated, kitchen.ID, actor, id.PrincipalID{}, "")
	return kitchen, nil
}

// DeleteKitchen removes a kitchen and everything nested under it. Only the
// owner may delete.
func (s *Service) DeleteKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) error {
	if _, err := s.findKitchen(ctx, kitchenID); err != nil {
		return err
	}
	if err := s.evaluator.RequireOwner(ctx, actor, kitchenID); err != nil {
		return err
	}
	if err := s.kitchens.Delete(ctx, kitchenID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete kitchen")
	}
	// The relational schema cascades memberships with the kitchen row; the
	// in-memory stores have no such link, so the service removes them itself.
	if err := s.memberships.DeleteByKitchen(ctx, kitchenID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete memberships")
	}
	s.emitAudit(ctx, audit.EventKitchenDeleted, kitchenID, actor, id.PrincipalID{}, "")
	return nil
}

// ResolveByShareToken resolves a public sharing link to kitchen metadata.
// No membership required; the token itself is the capability.
func (s *Service) ResolveByShareToken(ctx context.Context, token uuid.UUID) (*models.Kitchen, error) {
	if token == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "share token is required")
	}
	kitchen, err := s.kitchens.FindByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "kitchen not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve share token")
	}
	return kitchen, nil
}

// ListMembers returns all memberships of a kitchen, member-gated.
func (s *Service) ListMembers(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Membership, error) {
	if _, err := s.findKitchen(ctx, kitchenID); err != nil {
		return nil, err
	}
	if err := s.evaluator.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	members, err := s.memberships.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list members")
	}
	return members, nil
}

func (s *Service) findKitchen(ctx context.Context, kitchenID id.KitchenID) (*models.Kitchen, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	kitchen, err := s.kitchens.FindByID(ctx, kitchenID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "kitchen not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load kitchen")
	}
	return kitchen, nil
}
