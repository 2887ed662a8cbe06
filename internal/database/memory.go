package database

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is an in-memory Store.
//
// It backs tests and local runs without MongoDB. Failures can be injected
// per operation to exercise the error paths of the layers above.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]any

	insertErr error
	listErr   error
	pingErr   error
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store reporting name as its database name.
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]any),
	}
}

// InsertOne appends document to collection and returns a fresh ObjectID hex.
func (m *MemoryStore) InsertOne(ctx context.Context, collection string, document any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return "", m.insertErr
	}

	m.collections[collection] = append(m.collections[collection], document)
	return bson.NewObjectID().Hex(), nil
}

// CollectionNames returns the collections that received at least one document, sorted.
func (m *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Name() string {
	return m.name
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingErr
}

func (m *MemoryStore) Close(context.Context) error {
	return nil
}

// Documents returns a copy of what was inserted into collection.
func (m *MemoryStore) Documents(collection string) []any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]any, len(m.collections[collection]))
	copy(docs, m.collections[collection])
	return docs
}

// Count returns the number of documents in collection.
func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

// AddCollection registers an empty collection name.
func (m *MemoryStore) AddCollection(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[name]; !ok {
		m.collections[name] = nil
	}
}

// FailInserts makes every following InsertOne return err. nil restores normal behavior.
func (m *MemoryStore) FailInserts(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertErr = err
}

// FailListing makes every following CollectionNames return err.
func (m *MemoryStore) FailListing(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

// FailPing makes every following Ping return err.
func (m *MemoryStore) FailPing(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingErr = err
}
