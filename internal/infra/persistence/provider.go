// Package persistence selects the user store backend from configuration.
package persistence

import (
	"log/slog"

	"identity/config"
	"identity/internal/domain/repository"
	"identity/internal/errors"
	"identity/internal/infra/persistence/memory"
	"identity/internal/infra/persistence/mongodb"
	"identity/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the user repository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository opens the configured store and returns its user repository.
// Only the selected backend is connected.
func NewUserRepository(params RepositoryParams) (repository.UserRepository, error) {
	driver := params.Config.Database.Driver
	logger := params.Logger.With(slog.String("driver", driver))

	switch driver {
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL user repository",
			slog.Int("replicas", len(params.Config.Database.ReplicaURLs)),
		)

		return postgres.NewUserRepository(db), nil

	case config.DriverMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB user repository", slog.String("database", params.Config.Database.Name))

		return mongodb.NewUserRepository(db), nil

	case config.DriverMemory:
		logger.Warn("Using in-memory user repository, data is lost on restart")

		return memory.NewUserRepository(), nil

	default:
		return nil, errors.Errorf("unknown database driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewUserRepository),
)
