package models

import id "larder/pkg/domain"

// Scope is the visible ingredient set a search runs against: either the
// global public set, or public plus one kitchen's private ingredients.
type Scope struct {
	KitchenID *id.KitchenID
}

// PublicScope covers public ingredients only.
func PublicScope() Scope {
	return Scope{}
}

// KitchenScope covers public ingredients plus the kitchen's private ones.
func KitchenScope(kitchenID id.KitchenID) Scope {
	return Scope{KitchenID: &kitchenID}
}

func (s Scope) IsKitchen() bool {
	return s.KitchenID != nil
}

// Contains reports whether the ingredient is visible in this scope.
func (s Scope) Contains(ingredient *Ingredient) bool {
	if ingredient.Public {
		return true
	}
	return s.KitchenID != nil && ingredient.KitchenID != nil && *s.KitchenID == *ingredient.KitchenID
}

// Key is the scope's cache-key component.
func (s Scope) Key() string {
	if s.KitchenID == nil {
		return "public"
	}
	return s.KitchenID.String()
}
