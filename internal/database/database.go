// Package database contains the logic for establishing
// the connection to the MongoDB document store.
//
// It handles:
//   - building the client from DATABASE_URL / DATABASE_NAME
//   - the Store interface every other layer depends on
//   - per-operation timeouts
//   - command logging in the local environment
//
// A missing configuration is not an error condition for the application:
// New reports ErrNotConfigured and the server runs with a nil Store.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/deppfellow/nettoyage-lausanne/internal/config"
)

// DatabasePingTimeout is the number of seconds to wait for the startup ping.
const DatabasePingTimeout = 10

// ErrNotConfigured is returned by New when DATABASE_URL or DATABASE_NAME is missing.
var ErrNotConfigured = errors.New("Database not available. Check DATABASE_URL and DATABASE_NAME environment variables.")

// Store is the document-store capability the rest of the application uses.
//
// *Database implements it against MongoDB, *MemoryStore in memory.
type Store interface {
	// InsertOne writes document into collection and returns the
	// store-assigned identifier as text.
	InsertOne(ctx context.Context, collection string, document any) (string, error)

	// CollectionNames lists the collections of the database.
	CollectionNames(ctx context.Context) ([]string, error)

	// Name is the database name.
	Name() string

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Database wraps the MongoDB client and the selected database.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database

	log              *zerolog.Logger
	operationTimeout time.Duration
}

var _ Store = (*Database)(nil)

// New creates the MongoDB client and pings the server once.
//
// Behavior:
//   - ErrNotConfigured when URL or name is empty
//   - an error when the URI cannot be parsed
//   - a failed ping is logged and the client is kept; the driver keeps
//     trying to reach the server on every subsequent operation
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	if !cfg.Database.IsConfigured() {
		return nil, ErrNotConfigured
	}

	opts := options.Client().
		ApplyURI(cfg.Database.URL).
		SetAppName(config.ServiceName).
		SetConnectTimeout(time.Duration(cfg.Database.ConnectTimeout) * time.Second).
		SetServerSelectionTimeout(time.Duration(cfg.Database.ConnectTimeout) * time.Second)

	// In local env, log every command the driver sends. This is very noisy,
	// which is why it's only in local.
	if cfg.Primary.Env == "local" {
		opts.SetMonitor(newCommandLogger(logger))
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	database := &Database{
		Client:           client,
		DB:               client.Database(cfg.Database.Name),
		log:              logger,
		operationTimeout: time.Duration(cfg.Database.OperationTimeout) * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		logger.Warn().Err(err).Str("database", cfg.Database.Name).Msg("database ping failed, continuing")
	} else {
		logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")
	}

	return database, nil
}

// withTimeout bounds a single store operation.
func (db *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.operationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.operationTimeout)
}

// InsertOne inserts document into the named collection.
func (db *Database) InsertOne(ctx context.Context, collection string, document any) (string, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	res, err := db.DB.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", err
	}

	return FormatID(res.InsertedID), nil
}

// CollectionNames lists every collection name of the database.
func (db *Database) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	return db.DB.ListCollectionNames(ctx, bson.D{})
}

// Name returns the configured database name.
func (db *Database) Name() string {
	return db.DB.Name()
}

// Ping checks that the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}

// FormatID renders a store-assigned identifier as text.
func FormatID(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// newCommandLogger reports every driver command at debug level.
func newCommandLogger(logger *zerolog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			logger.Debug().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			logger.Debug().
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Warn().
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("mongo command failed")
		},
	}
}
