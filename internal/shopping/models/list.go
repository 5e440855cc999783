// Package models defines shopping list domain entities.
package models

import (
	"strings"
	"time"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

const maxListNameLength = 128

// ShoppingList is a kitchen-scoped list of ingredients to buy. Unlike
// recipes, any kitchen member may modify a list and its items.
type ShoppingList struct {
	ID        id.ListID      `json:"id"`
	KitchenID id.KitchenID   `json:"kitchen_id"`
	Name      string         `json:"name"`
	CreatedBy id.PrincipalID `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewShoppingList constructs a shopping list, validating invariants.
func NewShoppingList(listID id.ListID, kitchenID id.KitchenID, name string, createdBy id.PrincipalID, now time.Time) (*ShoppingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "list name cannot be empty")
	}
	if len(name) > maxListNameLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "list name is too long")
	}
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "kitchen reference is required")
	}
	if createdBy.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "creator is required")
	}
	return &ShoppingList{
		ID:        listID,
		KitchenID: kitchenID,
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: now,
	}, nil
}
