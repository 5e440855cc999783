package handler

// CreateListRequest is the body of POST /kitchens/{kitchenID}/lists.
type CreateListRequest struct {
	Name string `json:"name"`
}

// UpdateListRequest is the body of PATCH /lists/{listID}. Nil fields are left
// untouched.
type UpdateListRequest struct {
	Name *string `json:"name"`
}

// AddItemRequest is the body of POST /lists/{listID}/items. SortOrder zero or
// negative lets the service append.
type AddItemRequest struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Note         string  `json:"note"`
	SortOrder    int     `json:"sort_order"`
}

// UpdateItemRequest is the body of PATCH /list-items/{itemID}.
type UpdateItemRequest struct {
	Quantity  *float64 `json:"quantity"`
	Unit      *string  `json:"unit"`
	Note      *string  `json:"note"`
	SortOrder *int     `json:"sort_order"`
}
