package postgres

import (
	"context"
	"database/sql"

	"identity/internal/errors"
	"identity/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// Replaced in tests.
var gooseUpContext = goose.UpContext

// Migrate applies the embedded users schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
