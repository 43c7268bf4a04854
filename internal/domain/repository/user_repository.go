// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"identity/internal/domain/entity"
	"identity/internal/errors"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserConflict is returned by Create when the email is already taken.
	ErrUserConflict = errors.New("user email already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by the exact email. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Returns ErrUserConflict when the email is taken.
	// The store fills in ID and timestamps when they are zero.
	Create(ctx context.Context, user *entity.User) error
}
