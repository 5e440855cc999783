package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	ingredientmodels "larder/internal/ingredient/models"
	"larder/internal/shopping/models"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/ordering"
	"larder/pkg/platform/sentinel"
)

// ListItemPatch carries a field-level partial update: only non-nil fields
// overwrite the stored row. Checked state changes go through CheckItem and
// UncheckItem so CheckedBy stays consistent.
type ListItemPatch struct {
	Quantity  *float64 `json:"quantity"`
	Unit      *string  `json:"unit"`
	Note      *string  `json:"note"`
	SortOrder *int     `json:"sort_order"`
}

// AddItem appends an ingredient to the list, any member. The sort position is
// derived from the current maximum; a positive requestedSort overrides it,
// non-positive requests are ignored. Duplicate ingredients in one list fail
// with a conflict and leave the existing row unmodified.
func (s *Service) AddItem(ctx context.Context, actor id.PrincipalID, listID id.ListID, ingredientID id.IngredientID, quantity float64, unit, note string, requestedSort int) (*models.ListItem, error) {
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "ingredient id is required")
	}
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, list.KitchenID); err != nil {
		return nil, err
	}
	if err := s.requireVisibleIngredient(ctx, ingredientID, list.KitchenID); err != nil {
		return nil, err
	}

	max, err := s.items.MaxSortOrder(ctx, listID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to derive sort order")
	}
	item, err := models.NewListItem(id.ListItemID(uuid.New()), listID, ingredientID,
		quantity, unit, note, ordering.Next(max, requestedSort))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.items.Create(ctx, item); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "ingredient is already on the list")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add item")
	}
	if s.metrics != nil {
		s.metrics.ItemsAdded.Inc()
	}
	return item, nil
}

// UpdateItem applies a partial update to a list item, any member. Quantity is
// validated post-merge.
func (s *Service) UpdateItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID, patch ListItemPatch) (*models.ListItem, error) {
	item, _, err := s.findMemberItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Note != nil {
		item.Note = *patch.Note
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update item")
	}
	return item, nil
}

// CheckItem marks an item bought by the actor. Checking an already checked
// item just records the new principal.
func (s *Service) CheckItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, error) {
	item, _, err := s.findMemberItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	item.Check(actor)
	if err := s.items.Update(ctx, item); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check item")
	}
	if s.metrics != nil {
		s.metrics.ItemsChecked.Inc()
	}
	return item, nil
}

// UncheckItem clears the bought mark.
func (s *Service) UncheckItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, error) {
	item, _, err := s.findMemberItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	item.Uncheck()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to uncheck item")
	}
	return item, nil
}

// RemoveItem deletes a list item, any member, and returns the prior value.
func (s *Service) RemoveItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, error) {
	item, _, err := s.findMemberItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, item.ID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove item")
	}
	return item, nil
}

// ListItems returns the list's items in sort order, member-gated.
func (s *Service) ListItems(ctx context.Context, actor id.PrincipalID, listID id.ListID) ([]*models.ListItem, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, list.KitchenID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list items")
	}
	return items, nil
}

// findMemberItem loads the item and its list, then gates on membership of the
// list's kitchen.
func (s *Service) findMemberItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, *models.ShoppingList, error) {
	if itemID.IsZero() {
		return nil, nil, dErrors.New(dErrors.CodeInvalidInput, "item id is required")
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, dErrors.New(dErrors.CodeNotFound, "list item not found")
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load list item")
	}
	list, err := s.findList(ctx, item.ListID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authorizer.RequireMembership(ctx, actor, list.KitchenID); err != nil {
		return nil, nil, err
	}
	return item, list, nil
}

// requireVisibleIngredient verifies the referenced ingredient exists and is
// visible from the list's kitchen. An invisible ingredient reads as
// nonexistent so private catalogs do not leak across kitchens.
func (s *Service) requireVisibleIngredient(ctx context.Context, ingredientID id.IngredientID, kitchenID id.KitchenID) error {
	ingredient, err := s.ingredients.FindByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "ingredient not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ingredient")
	}
	if !ingredientmodels.KitchenScope(kitchenID).Contains(ingredient) {
		return dErrors.New(dErrors.CodeNotFound, "ingredient not found")
	}
	return nil
}
