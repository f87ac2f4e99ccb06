// Package mongodb implements the repositories on top of MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"planner/config"
	"planner/internal/domain/lifecycle"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	usersCollection      = "users"
	tasksCollection      = "tasks"
	activitiesCollection = "activities"
	notesCollection      = "notes"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database.
// The connection is verified and indexes are ensured when the application starts.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout).
		SetMonitor(newCommandMonitor(params.Logger))

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return EnsureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the indexes the repositories rely on. The unique index on
// users.email is what guarantees email uniqueness under concurrent registrations.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		tasksCollection: {
			{Keys: bson.D{{Key: "_createdBy", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_created_by_created_at")},
		},
		activitiesCollection: {
			{Keys: bson.D{{Key: "_createdBy", Value: 1}}, Options: options.Index().SetName("idx_created_by")},
		},
		notesCollection: {
			{Keys: bson.D{{Key: "_createdBy", Value: 1}}, Options: options.Index().SetName("idx_created_by")},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}

func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.Any("failure", evt.Failure),
			)
		},
	}
}
