package model

import (
	"testing"
	"time"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignIdentity_FillsZeroValues(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := &entity.User{Email: "ann@x.io"}

	require.NoError(t, AssignIdentity(user, now))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, uuid.Version(7), user.ID.Version())
	assert.True(t, now.Equal(user.CreatedAt))
	assert.True(t, now.Equal(user.UpdatedAt))
}

func TestAssignIdentity_KeepsExistingValues(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &entity.User{ID: id, CreatedAt: created}

	require.NoError(t, AssignIdentity(user, time.Now()))

	assert.Equal(t, id, user.ID)
	assert.True(t, created.Equal(user.CreatedAt))
	assert.True(t, created.Equal(user.UpdatedAt))
}
