package mongodb

import (
	"context"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var fixedNow = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestRepo(mt *mtest.T) *userRepository {
	repo := NewUserRepository(mt.DB).(*userRepository)
	repo.now = func() time.Time { return fixedNow }

	return repo
}

func namespace(mt *mtest.T) string {
	return mt.DB.Name() + "." + usersCollection
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create success", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &entity.User{Email: "ann@x.io", Name: "Ann", PasswordHash: "$2a$04$hash"}
		require.NoError(mt, repo.Create(context.Background(), user))

		assert.NotEqual(mt, uuid.Nil, user.ID)
		assert.True(mt, fixedNow.Equal(user.CreatedAt))
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: identity.users index: users_email_key",
		}))

		err := repo.Create(context.Background(), &entity.User{Email: "ann@x.io", Name: "Ann", PasswordHash: "h"})
		assert.ErrorIs(mt, err, repository.ErrUserConflict)
	})

	mt.Run("create command error", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		err := repo.Create(context.Background(), &entity.User{Email: "ann@x.io", Name: "Ann", PasswordHash: "h"})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrUserConflict)

		var appErr domainerrors.AppError
		assert.True(mt, errors.As(err, &appErr))
	})

	mt.Run("find by email found", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		id := uuid.New()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "email", Value: "ann@x.io"},
			{Key: "name", Value: "Ann"},
			{Key: "password_hash", Value: "$2a$04$hash"},
			{Key: "created_at", Value: fixedNow},
			{Key: "updated_at", Value: fixedNow},
		}))

		got, err := repo.FindByEmail(context.Background(), "ann@x.io")
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
		assert.Equal(mt, "ann@x.io", got.Email)
		assert.Equal(mt, "Ann", got.Name)
		assert.Equal(mt, "$2a$04$hash", got.PasswordHash)
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "ghost@x.io")
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("find by email malformed id", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "not-a-uuid"},
			{Key: "email", Value: "ann@x.io"},
		}))

		_, err := repo.FindByEmail(context.Background(), "ann@x.io")
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "malformed user id")
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, EnsureIndexes(context.Background(), mt.DB))
	})
}
