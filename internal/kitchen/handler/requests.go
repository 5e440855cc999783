package handler

// CreateKitchenRequest is the body of POST /kitchens.
type CreateKitchenRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateKitchenRequest is the body of PATCH /kitchens/{kitchenID}. Nil fields
// are left untouched.
type UpdateKitchenRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// InviteRequest is the body of POST /kitchens/{kitchenID}/invites.
type InviteRequest struct {
	Email string `json:"email"`
}
