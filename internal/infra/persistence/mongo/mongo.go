// Package mongo contains the MongoDB-backed implementation of the activity log store.
package mongo

import (
	"context"
	"log/slog"

	"billing/config"
	"billing/internal/domain/lifecycle"
	"billing/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Connect opens a client for the configured database and ties it to the fx lifecycle.
func Connect(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*mongo.Database, error) {
	if cfg.Mongo == nil || cfg.Mongo.URI == "" {
		return nil, errors.New("mongo uri must be configured for the mongo activity log store")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Mongo.Database)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureActivityLogIndexes(ctx, db); err != nil {
				return err
			}

			logger.Info("MongoDB activity log store connected", slog.String("database", cfg.Mongo.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}
