package entity

import (
	"strings"

	"github.com/google/uuid"
)

// RoleEditor grants access to content administration.
const RoleEditor = "editor"

// Editor is a person allowed to administer site content.
type Editor struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
}

// NewEditor builds an editor whose ID is derived from the email address so it
// stays stable across restarts.
func NewEditor(email, passwordHash string) Editor {
	email = strings.ToLower(strings.TrimSpace(email))
	return Editor{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleEditor,
	}
}
