package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"identity/internal/infra/auth"
	"identity/internal/infra/persistence/memory"
	"identity/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRealIdentityService wires bcrypt at minimum cost, HS256 tokens and the in-memory store.
func newRealIdentityService(t *testing.T) usecase.IdentityUsecase {
	t.Helper()

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	tokens, err := auth.NewJWTServiceWithOptions("test-secret", 2*time.Hour)
	require.NoError(t, err)

	return NewIdentityService(IdentityServiceParams{
		UserRepo:     memory.NewUserRepository(),
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})
}
