// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"identity/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput = entity.Credentials

// VerifyTokenInput carries a bearer token presented by a client.
type VerifyTokenInput struct {
	Token string
}

// --- Output DTOs ---

// AuthOutput is the result of every successful identity operation.
type AuthOutput struct {
	User  *entity.Claims `json:"user"`
	Token string         `json:"token"`
}

// IdentityUsecase defines the register, login and token refresh operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	VerifyToken(ctx context.Context, input *VerifyTokenInput) (*AuthOutput, error)
}
