// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"identity/config"
	"identity/internal/domain/entity"
	"identity/internal/domain/service"
	"identity/internal/errors"
)

// tokenClaims is the wire form of entity.Claims. The user ID travels as "sub".
type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Process-wide signing secret.
	ttl    time.Duration    // Time-to-live for issued tokens.
	now    func() time.Time // Clock used for iat, exp and verification.
}

// Option customises a jwtService.
type Option func(*jwtService)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithOptions(cfg.JWT.Secret, cfg.JWT.TTL)
}

// NewJWTServiceWithOptions builds a token service from an explicit secret and lifetime.
func NewJWTServiceWithOptions(secret string, ttl time.Duration, opts ...Option) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("jwt ttl must be positive, got %s", ttl)
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Sign issues a new token. Every token gets its own jti, so two tokens for the
// same claims differ even when issued within the same second.
func (s *jwtService) Sign(claims *entity.Claims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must be provided")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry. A token is valid while now < exp.
func (s *jwtService) Verify(tokenString string) (*entity.Claims, error) {
	parsed := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "malformed subject")
	}

	return &entity.Claims{
		ID:    userID,
		Email: parsed.Email,
		Name:  parsed.Name,
	}, nil
}
