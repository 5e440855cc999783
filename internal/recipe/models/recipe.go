// Package models defines recipes and their ordered nested collections.
package models

import (
	"strings"
	"time"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// Recipe belongs to one kitchen. Any member may read it; only its creator may
// change it or its nested ingredients and steps.
type Recipe struct {
	ID          id.RecipeID    `json:"id"`
	KitchenID   id.KitchenID   `json:"kitchen_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Servings    int            `json:"servings"`
	CreatedBy   id.PrincipalID `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewRecipe constructs a recipe, validating invariants.
func NewRecipe(recipeID id.RecipeID, kitchenID id.KitchenID, name, description string, servings int, createdBy id.PrincipalID, now time.Time) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recipe name cannot be empty")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recipe name must be 128 characters or less")
	}
	if kitchenID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recipe must belong to a kitchen")
	}
	if servings < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "servings cannot be negative")
	}
	if createdBy.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recipe creator is required")
	}
	return &Recipe{
		ID:          recipeID,
		KitchenID:   kitchenID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Servings:    servings,
		CreatedBy:   createdBy,
		CreatedAt:   now,
	}, nil
}
