package models

import id "larder/pkg/domain"

// Principal is an authenticated user identity. The identity subsystem owns
// the record; this core only reads it to resolve invitees and display names.
type Principal struct {
	ID          id.PrincipalID `json:"id"`
	DisplayName string         `json:"display_name"`
	Email       string         `json:"email"`
}
