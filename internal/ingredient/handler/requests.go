package handler

import id "larder/pkg/domain"

// CreateIngredientRequest is the body of POST /ingredients.
type CreateIngredientRequest struct {
	Name       string  `json:"name"`
	Public     bool    `json:"public"`
	KitchenID  *string `json:"kitchen_id"`
	CategoryID *string `json:"category_id"`
}

// UpdateIngredientRequest is the body of PATCH /ingredients/{ingredientID}.
// Nil fields are left untouched.
type UpdateIngredientRequest struct {
	Name       *string `json:"name"`
	Public     *bool   `json:"public"`
	CategoryID *string `json:"category_id"`
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name      string  `json:"name"`
	KitchenID *string `json:"kitchen_id"`
}

func parseOptionalKitchenID(raw *string) (*id.KitchenID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	kitchenID, err := id.ParseKitchenID(*raw)
	if err != nil {
		return nil, err
	}
	return &kitchenID, nil
}

func parseOptionalCategoryID(raw *string) (*id.CategoryID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	categoryID, err := id.ParseCategoryID(*raw)
	if err != nil {
		return nil, err
	}
	return &categoryID, nil
}
