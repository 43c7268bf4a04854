// Package memory provides a process-local user store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"identity/internal/domain/entity"
	"identity/internal/domain/repository"
	"identity/internal/errors"
	"identity/internal/infra/persistence/model"
)

// userRepository keeps users keyed by exact email. The mutex makes the
// existence check and insert in Create atomic.
type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
	now     func() time.Time
}

// NewUserRepository returns an empty in-memory store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byEmail: make(map[string]entity.User),
		now:     time.Now,
	}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byEmail[user.Email]; exists {
		return errors.Wrap(repository.ErrUserConflict, "email already exists")
	}

	if err := model.AssignIdentity(user, repo.now().UTC()); err != nil {
		return err
	}
	repo.byEmail[user.Email] = *user

	return nil
}
