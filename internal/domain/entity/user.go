// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. It is created once and never mutated by the identity core.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier. Compared byte-for-byte, unique across users.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt secret derived from the password. Never leaves the service layer.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Claims returns the public-safe projection of the user.
func (u *User) Claims() *Claims {
	return &Claims{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
