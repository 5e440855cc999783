package handler

// CreateRecipeRequest is the body of POST /kitchens/{kitchenID}/recipes.
type CreateRecipeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Servings    int    `json:"servings"`
}

// UpdateRecipeRequest is the body of PATCH /recipes/{recipeID}. Nil fields
// are left untouched.
type UpdateRecipeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Servings    *int    `json:"servings"`
}

// AddIngredientRequest is the body of POST /recipes/{recipeID}/ingredients.
// SortOrder zero or negative lets the service append.
type AddIngredientRequest struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Note         string  `json:"note"`
	SortOrder    int     `json:"sort_order"`
}

// UpdateIngredientItemRequest is the body of PATCH /recipe-ingredients/{itemID}.
type UpdateIngredientItemRequest struct {
	Quantity  *float64 `json:"quantity"`
	Unit      *string  `json:"unit"`
	Note      *string  `json:"note"`
	SortOrder *int     `json:"sort_order"`
}

// AddStepRequest is the body of POST /recipes/{recipeID}/steps.
type AddStepRequest struct {
	Body      string `json:"body"`
	SortOrder int    `json:"sort_order"`
}

// UpdateStepRequest is the body of PATCH /recipe-steps/{stepID}.
type UpdateStepRequest struct {
	Body      *string `json:"body"`
	SortOrder *int    `json:"sort_order"`
}
