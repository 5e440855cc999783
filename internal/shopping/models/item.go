package models

import (
	"strings"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// ListItem references an ingredient within a shopping list.
//
// Invariants:
//   - a given ingredient appears at most once per list, enforced at the
//     storage layer
//   - Quantity is never negative, validated post-merge on updates
//   - SortOrder is positive and append-only; deletions leave gaps
//   - Checked implies CheckedBy records who checked it off
type ListItem struct {
	ID           id.ListItemID   `json:"id"`
	ListID       id.ListID       `json:"list_id"`
	IngredientID id.IngredientID `json:"ingredient_id"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	Note         string          `json:"note"`
	Checked      bool            `json:"checked"`
	CheckedBy    *id.PrincipalID `json:"checked_by"`
	SortOrder    int             `json:"sort_order"`
}

// NewListItem constructs an unchecked list item, validating invariants.
func NewListItem(itemID id.ListItemID, listID id.ListID, ingredientID id.IngredientID, quantity float64, unit, note string, sortOrder int) (*ListItem, error) {
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "ingredient reference is required")
	}
	if quantity < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "quantity cannot be negative")
	}
	if sortOrder < 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "sort order must be positive")
	}
	return &ListItem{
		ID:           itemID,
		ListID:       listID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         strings.TrimSpace(unit),
		Note:         strings.TrimSpace(note),
		SortOrder:    sortOrder,
	}, nil
}

// Validate re-checks invariants after a partial update merge.
func (li *ListItem) Validate() error {
	if li.Quantity < 0 {
		return dErrors.New(dErrors.CodeValidation, "quantity cannot be negative")
	}
	if li.SortOrder < 1 {
		return dErrors.New(dErrors.CodeValidation, "sort order must be positive")
	}
	return nil
}

// Check marks the item bought by the given principal. Idempotent.
func (li *ListItem) Check(by id.PrincipalID) {
	li.Checked = true
	li.CheckedBy = &by
}

// Uncheck clears the bought mark. Idempotent.
func (li *ListItem) Uncheck() {
	li.Checked = false
	li.CheckedBy = nil
}
