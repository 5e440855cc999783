package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// Kitchen is the aggregate root for a sharing scope. Everything else
// (ingredients, recipes, shopping lists, pantry inventory) nests under one.
//
// Invariants:
//   - Name is non-empty and at most 128 characters
//   - ShareToken is unique across kitchens and never rotates
//   - While the kitchen exists, at least one membership with Owner=true
//     exists (enforced by the invitation workflow refusing owner
//     self-removal)
type Kitchen struct {
	ID          id.KitchenID   `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	// ShareToken is the public-facing token used in external sharing links.
	// Resolving it grants read of kitchen metadata only, never membership.
	ShareToken uuid.UUID      `json:"share_token"`
	CreatedBy  id.PrincipalID `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewKitchen constructs a kitchen, validating invariants.
func NewKitchen(kitchenID id.KitchenID, name, description string, createdBy id.PrincipalID, now time.Time) (*Kitchen, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "kitchen name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "kitchen name must be 128 characters or less")
	}
	if createdBy.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "kitchen creator is required")
	}
	return &Kitchen{
		ID:          kitchenID,
		Name:        name,
		Description: strings.TrimSpace(description),
		ShareToken:  uuid.New(),
		CreatedBy:   createdBy,
		CreatedAt:   now,
	}, nil
}
