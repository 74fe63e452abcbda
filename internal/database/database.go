package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Name of the database every collection lives in.
const DBName = "giftdb"

// Connector lazily opens a single MongoDB connection and memoizes the
// handle for the rest of the process lifetime. The mutex serializes
// concurrent first callers so only one dial happens; a failed dial is not
// memoized, so the next caller tries again.
type Connector struct {
	uri string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewConnector(uri string) *Connector {
	return &Connector{uri: uri}
}

// Database returns the memoized handle, dialing on first use.
func (c *Connector) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		slog.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c.client = client
	c.db = client.Database(DBName)
	slog.Info("database connected", "db", DBName)
	return c.db, nil
}

// Ping reports whether the store is reachable, connecting if needed.
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.Database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, nil)
}

// Close disconnects the underlying client if a connection was ever made.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	return err
}
