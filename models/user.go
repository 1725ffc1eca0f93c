package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication.
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	// ID is the UUID v7 assigned at registration.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, normalized login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the authenticated view of the user without credentials.
func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// Identity is the authenticated caller produced by the auth gate. It is passed
// explicitly to every operation that touches owner-scoped data.
type Identity struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// that lookups and the unique index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
