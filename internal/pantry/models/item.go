// Package models defines pantry inventory domain entities.
package models

import (
	"strings"
	"time"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// PantryItem records how much of an ingredient a kitchen has on hand. The
// collection is unordered; the duplicate guard (one row per (kitchen,
// ingredient)) is the only structural invariant and lives at the storage
// layer.
type PantryItem struct {
	ID           id.PantryItemID `json:"id"`
	KitchenID    id.KitchenID    `json:"kitchen_id"`
	IngredientID id.IngredientID `json:"ingredient_id"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	ExpiresAt    *time.Time      `json:"expires_at"`
}

// NewPantryItem constructs a pantry item, validating invariants.
func NewPantryItem(itemID id.PantryItemID, kitchenID id.KitchenID, ingredientID id.IngredientID, quantity float64, unit string, expiresAt *time.Time) (*PantryItem, error) {
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "ingredient reference is required")
	}
	if quantity < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "quantity cannot be negative")
	}
	return &PantryItem{
		ID:           itemID,
		KitchenID:    kitchenID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         strings.TrimSpace(unit),
		ExpiresAt:    expiresAt,
	}, nil
}

// Validate re-checks invariants after a partial update merge.
func (pi *PantryItem) Validate() error {
	if pi.Quantity < 0 {
		return dErrors.New(dErrors.CodeValidation, "quantity cannot be negative")
	}
	return nil
}

// Expired reports whether the item is past its expiry at the given time.
// Items without an expiry never expire.
func (pi *PantryItem) Expired(now time.Time) bool {
	return pi.ExpiresAt != nil && pi.ExpiresAt.Before(now)
}
