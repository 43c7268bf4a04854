package model

import (
	"time"

	"identity/internal/domain/entity"
	"identity/internal/errors"

	"github.com/google/uuid"
)

// AssignIdentity fills the ID and timestamps of a user about to be created.
// Values already set by the caller are kept.
func AssignIdentity(user *entity.User, now time.Time) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	return nil
}
