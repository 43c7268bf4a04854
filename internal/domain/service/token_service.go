package service

import (
	"identity/internal/domain/entity"
	"identity/internal/errors"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed structure, unexpected algorithm or expiry.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Sign issues a token embedding the claims, valid for TTL from now.
	Sign(claims *entity.Claims) (string, error)

	// Verify checks the token and returns its claims without temporal fields.
	Verify(token string) (*entity.Claims, error)
}
