// Package mongodb contains the MongoDB implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"

	"identity/config"
	"identity/internal/domain/lifecycle"
	"identity/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollection = "users"
	emailIndexName  = "users_email_key"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and registers its lifecycle.
// The unique email index is ensured on start.
func New(params Params) (*mongo.Database, error) {
	dbCfg := params.Config.Database

	client, err := mongo.Connect(context.Background(), clientOptions(dbCfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(dbCfg.Name)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", dbCfg.Name))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique index that makes concurrent registrations safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	return nil
}

// clientOptions maps the pool settings onto the driver. The driver has no
// per-connection lifetime limit, so connMaxLifetime does not apply here.
func clientOptions(dbCfg config.DatabaseConfig) *options.ClientOptions {
	clientOpts := options.Client().ApplyURI(dbCfg.URL)
	if dbCfg.MaxOpenConns > 0 {
		clientOpts.SetMaxPoolSize(uint64(dbCfg.MaxOpenConns))
	}
	if dbCfg.MaxIdleConns > 0 {
		clientOpts.SetMinPoolSize(uint64(dbCfg.MaxIdleConns))
	}
	if dbCfg.ConnMaxIdleTime > 0 {
		clientOpts.SetMaxConnIdleTime(dbCfg.ConnMaxIdleTime)
	}

	return clientOpts
}
