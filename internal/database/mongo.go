package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kingksjo/recipe-platform/internal/metrics"
)

// Manager owns the process-wide MongoDB client. The client is constructed
// lazily on first Acquire and shared by every caller until Shutdown; the
// mutex guarantees at most one live client exists at any time, even under
// concurrent first acquisition.
type Manager struct {
	mu     sync.Mutex
	client *mongo.Client

	uri    string
	dbName string
}

func NewManager(uri, dbName string) *Manager {
	return &Manager{uri: uri, dbName: dbName}
}

// Acquire returns a handle scoped to the configured database, constructing
// the shared client on first use. The handle is a cheap projection: callers
// use it for one unit of work and drop it, no per-use teardown exists.
// Connectivity is not verified here; the driver dials on first operation.
func (m *Manager) Acquire(ctx context.Context) (*mongo.Database, error) {
	client, err := m.acquireClient(ctx)
	if err != nil {
		return nil, err
	}
	metrics.DatabaseAcquiresTotal.Inc()
	return client.Database(m.dbName), nil
}

func (m *Manager) acquireClient(ctx context.Context) (*mongo.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	metrics.DatabaseClientsCreated.Inc()
	m.client = client
	return client, nil
}

// Shutdown disconnects the shared client and resets the manager so a later
// Acquire builds a fresh one. Safe to call multiple times; calling it when
// no client exists is a no-op. Handles acquired before Shutdown must not be
// used afterwards.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	client := m.client
	m.client = nil

	metrics.DatabaseShutdownsTotal.Inc()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	return nil
}

// Ping verifies connectivity to the primary, used by readiness checks.
func (m *Manager) Ping(ctx context.Context) error {
	db, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// ListCollections returns the collection names of the configured database.
func (m *Manager) ListCollections(ctx context.Context) ([]string, error) {
	db, err := m.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.DatabaseOpDuration.WithLabelValues("list_collections"))
	defer timer.ObserveDuration()

	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
