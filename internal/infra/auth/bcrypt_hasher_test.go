package auth

import (
	"strings"
	"testing"

	"identity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher.(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(t)

	password := "hunter2"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(t)
	password := "pw1"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("pw2", hash))
	assert.False(t, hasher.Check("", hash))

	// Malformed secrets never match and never panic
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("")
	require.NoError(t, err)
	assert.True(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(" ", hash))
}

func TestBcryptHasher_LongPasswordIsTruncated(t *testing.T) {
	hasher := newTestHasher(t)

	long := strings.Repeat("a", 100)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	assert.True(t, hasher.Check(long, hash))
	// Only the first 72 bytes take part in the comparison.
	assert.True(t, hasher.Check(strings.Repeat("a", 72)+"different tail", hash))
	assert.False(t, hasher.Check(strings.Repeat("a", 71), hash))
}

func TestPasswordBytes(t *testing.T) {
	assert.Len(t, passwordBytes(strings.Repeat("x", 73)), 72)
	assert.Equal(t, []byte("short"), passwordBytes("short"))
	assert.Empty(t, passwordBytes(""))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher, err := NewBcryptHasherWithCost(customCost)
	require.NoError(t, err)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost

	hasher, err := NewBcryptHasher(cfg)
	require.NoError(t, err)
	assert.NotNil(t, hasher)

	cfg.Auth.BcryptCost = bcrypt.MaxCost + 1
	_, err = NewBcryptHasher(cfg)
	assert.Error(t, err)

	cfg.Auth.BcryptCost = 0
	_, err = NewBcryptHasher(cfg)
	assert.Error(t, err)
}
