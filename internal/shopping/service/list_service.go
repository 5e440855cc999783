package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	audit "larder/pkg/platform/audit"
	"larder/pkg/platform/sentinel"
	"larder/pkg/requestcontext"
)

// ListPatch carries a field-level partial update.
type ListPatch struct {
	Name *string `json:"name"`
}

// CreateList creates a shopping list in a kitchen, any member.
func (s *Service) CreateList(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, name string) (*models.ShoppingList, error) {
	if actor.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acting principal is required")
	}
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}

	list, err := models.NewShoppingList(id.ListID(uuid.New()), kitchenID, name, actor, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create list")
	}

	s.emitAudit(ctx, audit.EventListCreated, kitchenID, actor)
	if s.metrics != nil {
		s.metrics.ListsCreated.Inc()
	}
	return list, nil
}

// GetList returns a shopping list to any member of its kitchen.
func (s *Service) GetList(ctx context.Context, actor id.PrincipalID, listID id.ListID) (*models.ShoppingList, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, list.KitchenID); err != nil {
		return nil, err
	}
	return list, nil
}

// ListLists returns the kitchen's shopping lists, member-gated.
func (s *Service) ListLists(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.ShoppingList, error) {
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "kitchen id is required")
	}
	if err := s.authorizer.RequireMembership(ctx, actor, kitchenID); err != nil {
		return nil, err
	}
	lists, err := s.lists.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list shopping lists")
	}
	return lists, nil
}

// UpdateList applies a partial update, any member.
func (s *Service) UpdateList(ctx context.Context, actor id.PrincipalID, listID id.ListID, patch ListPatch) (*models.ShoppingList, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, list.KitchenID); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		list.Name = *patch.Name
	}
	// Re-validate post-merge through the constructor rules.
	if _, err := models.NewShoppingList(list.ID, list.KitchenID, list.Name, list.CreatedBy, list.CreatedAt); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update list")
	}
	return list, nil
}

// DeleteList removes a shopping list and its items, any member.
func (s *Service) DeleteList(ctx context.Context, actor id.PrincipalID, listID id.ListID) error {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, list.KitchenID); err != nil {
		return err
	}
	if err := s.lists.Delete(ctx, listID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete list")
	}
	s.emitAudit(ctx, audit.EventListDeleted, list.KitchenID, actor)
	return nil
}

func (s *Service) findList(ctx context.Context, listID id.ListID) (*models.ShoppingList, error) {
	if listID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "list id is required")
	}
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "list not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load list")
	}
	return list, nil
}

// emitAudit logs the action and forwards it to the audit publisher when one
// is configured. Audit failures never fail the domain operation.
func (s *Service) emitAudit(ctx context.Context, action audit.AuditEvent, kitchenID id.KitchenID, actor id.PrincipalID) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"event", string(action),
			"log_type", "audit",
			"kitchen_id", kitchenID.String(),
			"principal_id", actor.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		KitchenID:   kitchenID,
		PrincipalID: actor,
		Action:      string(action),
	})
}
