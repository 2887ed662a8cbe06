package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// IndexSpec describes one index the application expects on a collection.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
}

// Indexes is the full set of indexes created at startup.
//
// Submissions are only ever read back by operators, newest first, so each
// collection gets a descending created_at index.
var Indexes = []IndexSpec{
	{Collection: "lead", Name: "created_at_desc", Keys: bson.D{{Key: "created_at", Value: -1}}},
	{Collection: "contactmessage", Name: "created_at_desc", Keys: bson.D{{Key: "created_at", Value: -1}}},
}

// EnsureIndexes creates every index in Indexes.
//
// CreateOne is idempotent for an identical definition, so this runs on
// every start. The first failure is returned; callers log it and carry on.
func (db *Database) EnsureIndexes(ctx context.Context, logger *zerolog.Logger) error {
	for _, spec := range Indexes {
		model := mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetName(spec.Name),
		}

		name, err := db.DB.Collection(spec.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("creating index %s on %s: %w", spec.Name, spec.Collection, err)
		}

		logger.Debug().
			Str("collection", spec.Collection).
			Str("index", name).
			Msg("index ensured")
	}

	logger.Info().Int("indexes", len(Indexes)).Msg("database indexes up to date")
	return nil
}
