package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/deppfellow/nettoyage-lausanne/internal/database"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/storeerr"
)

const (
	opInsert          = "insert"
	opListCollections = "list_collections"
)

// DocumentRepository writes records into named collections.
type DocumentRepository struct {
	server *server.Server

	// now is replaced in tests.
	now func() time.Time
}

func NewDocumentRepository(s *server.Server) *DocumentRepository {
	return &DocumentRepository{
		server: s,
		now:    time.Now,
	}
}

// CreateDocument stores record in collection and returns the new id.
//
// The record is encoded with its bson tags, in field order, then
// created_at and updated_at are appended in UTC. Errors are *storeerr.Error;
// a missing store yields one wrapping database.ErrNotConfigured.
func (r *DocumentRepository) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	store := r.server.DB
	if store == nil {
		return "", storeerr.Wrap(opInsert, collection, database.ErrNotConfigured)
	}

	doc, err := toDocument(record)
	if err != nil {
		return "", storeerr.Wrap(opInsert, collection, err)
	}

	now := r.now().UTC()
	doc = append(doc,
		bson.E{Key: "created_at", Value: now},
		bson.E{Key: "updated_at", Value: now},
	)

	start := time.Now()
	id, err := store.InsertOne(ctx, collection, doc)
	r.server.Metrics.ObserveStoreOperation(opInsert, time.Since(start))
	if err != nil {
		return "", storeerr.Wrap(opInsert, collection, err)
	}

	return id, nil
}

// CollectionNames lists the collections of the store.
func (r *DocumentRepository) CollectionNames(ctx context.Context) ([]string, error) {
	store := r.server.DB
	if store == nil {
		return nil, storeerr.Wrap(opListCollections, "", database.ErrNotConfigured)
	}

	start := time.Now()
	names, err := store.CollectionNames(ctx)
	r.server.Metrics.ObserveStoreOperation(opListCollections, time.Since(start))
	if err != nil {
		return nil, storeerr.Wrap(opListCollections, "", err)
	}

	return names, nil
}

// toDocument encodes record through its bson tags into an ordered document.
func toDocument(record any) (bson.D, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "encoding document")
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}

	return doc, nil
}
