package handler

import "time"

// AddItemRequest is the body of POST /kitchens/{kitchenID}/pantry.
type AddItemRequest struct {
	IngredientID string     `json:"ingredient_id"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// UpdateItemRequest is the body of PATCH /pantry-items/{itemID}. Absent
// fields are left untouched. JSON null cannot be told apart from an absent
// field, so clearing the expiry goes through the explicit clear_expiry flag.
type UpdateItemRequest struct {
	Quantity    *float64   `json:"quantity"`
	Unit        *string    `json:"unit"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClearExpiry bool       `json:"clear_expiry"`
}
