package models

import (
	"strings"

	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
)

// RecipeIngredient references an ingredient within a recipe.
//
// Invariants:
//   - a given ingredient appears at most once per recipe, enforced at the
//     storage layer
//   - Quantity is never negative, validated post-merge on updates
//   - SortOrder is positive and append-only; deletions leave gaps
type RecipeIngredient struct {
	ID           id.RecipeIngredientID `json:"id"`
	RecipeID     id.RecipeID           `json:"recipe_id"`
	IngredientID id.IngredientID       `json:"ingredient_id"`
	Quantity     float64               `json:"quantity"`
	Unit         string                `json:"unit"`
	Note         string                `json:"note"`
	SortOrder    int                   `json:"sort_order"`
}

// NewRecipeIngredient constructs a recipe ingredient, validating invariants.
func NewRecipeIngredient(itemID id.RecipeIngredientID, recipeID id.RecipeID, ingredientID id.IngredientID, quantity float64, unit, note string, sortOrder int) (*RecipeIngredient, error) {
	if ingredientID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "ingredient reference is required")
	}
	if quantity < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "quantity cannot be negative")
	}
	if sortOrder < 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "sort order must be positive")
	}
	return &RecipeIngredient{
		ID:           itemID,
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         strings.TrimSpace(unit),
		Note:         strings.TrimSpace(note),
		SortOrder:    sortOrder,
	}, nil
}

// Validate re-checks invariants after a partial update merge.
func (ri *RecipeIngredient) Validate() error {
	if ri.Quantity < 0 {
		return dErrors.New(dErrors.CodeValidation, "quantity cannot be negative")
	}
	if ri.SortOrder < 1 {
		return dErrors.New(dErrors.CodeValidation, "sort order must be positive")
	}
	return nil
}

// RecipeStep is one instruction in a recipe, ordered by SortOrder.
type RecipeStep struct {
	ID        id.RecipeStepID `json:"id"`
	RecipeID  id.RecipeID     `json:"recipe_id"`
	Body      string          `json:"body"`
	SortOrder int             `json:"sort_order"`
}

// NewRecipeStep constructs a recipe step, validating invariants.
func NewRecipeStep(stepID id.RecipeStepID, recipeID id.RecipeID, body string, sortOrder int) (*RecipeStep, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "step text cannot be empty")
	}
	if sortOrder < 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "sort order must be positive")
	}
	return &RecipeStep{
		ID:        stepID,
		RecipeID:  recipeID,
		Body:      body,
		SortOrder: sortOrder,
	}, nil
}

// Validate re-checks invariants after a partial update merge.
func (rs *RecipeStep) Validate() error {
	if strings.TrimSpace(rs.Body) == "" {
		return dErrors.New(dErrors.CodeValidation, "step text cannot be empty")
	}
	if rs.SortOrder < 1 {
		return dErrors.New(dErrors.CodeValidation, "sort order must be positive")
	}
	return nil
}
