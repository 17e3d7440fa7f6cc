package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account record in the persisted document.
// Fields are never mutated after signup.
type User struct {
	ID           uuid.UUID `json:"id"`           // Opaque unique identifier
	Email        string    `json:"email"`        // Unique, stored lowercase
	PasswordHash string    `json:"passwordHash"` // bcrypt hash
	CreatedAt    time.Time `json:"createdAt"`    // Signup timestamp
}

// PublicUser is the projection of a User that is safe to send to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Public returns the client-facing projection of u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}
