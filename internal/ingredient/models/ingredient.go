// Package models defines the ingredient catalog types.
package models

import (
	"strings"
	"time"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// Ingredient is a named item in the catalog. Public ingredients are visible
// everywhere; private ones only inside their kitchen.
//
// Invariants:
//   - Name is non-empty and at most 128 characters
//   - a private ingredient always belongs to a kitchen
//   - CreatedBy is nil only for system-seeded ingredients, which are always
//     public and have no editor
type Ingredient struct {
	ID         id.IngredientID `json:"id"`
	Name       string          `json:"name"`
	Public     bool            `json:"public"`
	KitchenID  *id.KitchenID   `json:"kitchen_id,omitempty"`
	CategoryID *id.CategoryID  `json:"category_id,omitempty"`
	CreatedBy  *id.PrincipalID `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewIngredient constructs an ingredient, validating invariants.
func NewIngredient(ingredientID id.IngredientID, name string, public bool, kitchenID *id.KitchenID, categoryID *id.CategoryID, createdBy id.PrincipalID, now time.Time) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "ingredient name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "ingredient name must be 128 characters or less")
	}
	if !public && kitchenID == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "private ingredient must belong to a kitchen")
	}
	if createdBy.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "ingredient creator is required")
	}
	creator := createdBy
	return &Ingredient{
		ID:         ingredientID,
		Name:       name,
		Public:     public,
		KitchenID:  kitchenID,
		CategoryID: categoryID,
		CreatedBy:  &creator,
		CreatedAt:  now,
	}, nil
}

// Editable reports whether the ingredient has an owner at all. System-seeded
// rows are frozen.
func (i *Ingredient) Editable() bool {
	return i.CreatedBy != nil
}
