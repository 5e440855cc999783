package models

import (
	"strings"
	"time"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// Category groups ingredients. A nil KitchenID makes the category global;
// otherwise it is visible to that kitchen's members only.
type Category struct {
	ID        id.CategoryID `json:"id"`
	Name      string        `json:"name"`
	KitchenID *id.KitchenID `json:"kitchen_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewCategory constructs a category, validating invariants.
func NewCategory(categoryID id.CategoryID, name string, kitchenID *id.KitchenID, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name cannot be empty")
	}
	if len(name) > 64 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name must be 64 characters or less")
	}
	return &Category{
		ID:        categoryID,
		Name:      name,
		KitchenID: kitchenID,
		CreatedAt: now,
	}, nil
}
