// Package domain defines typed identifiers shared across feature modules.
//
// Every aggregate gets its own UUID-backed ID type so the compiler rejects
// cross-type assignment (passing a RecipeID where a KitchenID is expected).
// Parse functions validate at trust boundaries: non-empty, well-formed,
// non-nil UUIDs only.
package domain

import (
	"github.com/google/uuid"

	dErrors "larder/pkg/domain-errors"
)

type (
	// PrincipalID identifies an authenticated user. Principals are owned by
	// the external identity subsystem; this core only references them.
	PrincipalID uuid.UUID

	// KitchenID identifies a kitchen, the tenant/sharing scope.
	KitchenID uuid.UUID

	// MembershipID identifies a (kitchen, principal) membership row.
	MembershipID uuid.UUID

	// IngredientID identifies a catalog ingredient.
	IngredientID uuid.UUID

	// CategoryID identifies an ingredient category.
	CategoryID uuid.UUID

	// RecipeID identifies a recipe.
	RecipeID uuid.UUID

	// RecipeIngredientID identifies an ingredient row within a recipe.
	RecipeIngredientID uuid.UUID

	// RecipeStepID identifies a step row within a recipe.
	RecipeStepID uuid.UUID

	// ListID identifies a shopping list.
	ListID uuid.UUID

	// ListItemID identifies an item row within a shopping list.
	ListItemID uuid.UUID

	// PantryItemID identifies an inventory row within a kitchen.
	PantryItemID uuid.UUID
)

func (id PrincipalID) String() string        { return uuid.UUID(id).String() }
func (id KitchenID) String() string          { return uuid.UUID(id).String() }
func (id MembershipID) String() string       { return uuid.UUID(id).String() }
func (id IngredientID) String() string       { return uuid.UUID(id).String() }
func (id CategoryID) String() string         { return uuid.UUID(id).String() }
func (id RecipeID) String() string           { return uuid.UUID(id).String() }
func (id RecipeIngredientID) String() string { return uuid.UUID(id).String() }
func (id RecipeStepID) String() string       { return uuid.UUID(id).String() }
func (id ListID) String() string             { return uuid.UUID(id).String() }
func (id ListItemID) String() string         { return uuid.UUID(id).String() }
func (id PantryItemID) String() string       { return uuid.UUID(id).String() }

func (id PrincipalID) IsZero() bool        { return uuid.UUID(id) == uuid.Nil }
func (id KitchenID) IsZero() bool          { return uuid.UUID(id) == uuid.Nil }
func (id MembershipID) IsZero() bool       { return uuid.UUID(id) == uuid.Nil }
func (id IngredientID) IsZero() bool       { return uuid.UUID(id) == uuid.Nil }
func (id CategoryID) IsZero() bool         { return uuid.UUID(id) == uuid.Nil }
func (id RecipeID) IsZero() bool           { return uuid.UUID(id) == uuid.Nil }
func (id RecipeIngredientID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id RecipeStepID) IsZero() bool       { return uuid.UUID(id) == uuid.Nil }
func (id ListID) IsZero() bool             { return uuid.UUID(id) == uuid.Nil }
func (id ListItemID) IsZero() bool         { return uuid.UUID(id) == uuid.Nil }
func (id PantryItemID) IsZero() bool       { return uuid.UUID(id) == uuid.Nil }

// parse validates a raw UUID string for use as a typed identifier.
func parse(raw, kind string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id must not be the nil UUID")
	}
	return u, nil
}

func ParsePrincipalID(raw string) (PrincipalID, error) {
	u, err := parse(raw, "principal")
	return PrincipalID(u), err
}

func ParseKitchenID(raw string) (KitchenID, error) {
	u, err := parse(raw, "kitchen")
	return KitchenID(u), err
}

func ParseMembershipID(raw string) (MembershipID, error) {
	u, err := parse(raw, "membership")
	return MembershipID(u), err
}

func ParseIngredientID(raw string) (IngredientID, error) {
	u, err := parse(raw, "ingredient")
	return IngredientID(u), err
}

func ParseCategoryID(raw string) (CategoryID, error) {
	u, err := parse(raw, "category")
	return CategoryID(u), err
}

func ParseRecipeID(raw string) (RecipeID, error) {
	u, err := parse(raw, "recipe")
	return RecipeID(u), err
}

func ParseRecipeIngredientID(raw string) (RecipeIngredientID, error) {
	u, err := parse(raw, "recipe ingredient")
	return RecipeIngredientID(u), err
}

func ParseRecipeStepID(raw string) (RecipeStepID, error) {
	u, err := parse(raw, "recipe step")
	return RecipeStepID(u), err
}

func ParseListID(raw string) (ListID, error) {
	u, err := parse(raw, "list")
	return ListID(u), err
}

func ParseListItemID(raw string) (ListItemID, error) {
	u, err := parse(raw, "list item")
	return ListItemID(u), err
}

func ParsePantryItemID(raw string) (PantryItemID, error) {
	u, err := parse(raw, "pantry item")
	return PantryItemID(u), err
}
