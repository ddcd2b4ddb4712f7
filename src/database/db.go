package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionVenues  = "venues"
	CollectionBanners = "banners"
	CollectionAdmins  = "admins"
)

// Database holds the MongoDB client and the application database handle.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and pings it once. The pool is bounded and the
// driver owns socket/connect timeouts; the application adds none of its own.
func New(ctx context.Context, uri, dbName string) (*Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetServerSelectionTimeout(15 * time.Second).
		SetConnectTimeout(15 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Database{client: client, db: client.Database(dbName)}, nil
}

// Connect retries New a fixed number of times with a fixed delay before
// giving up. Startup is the only place in the process that retries.
func Connect(ctx context.Context, uri, dbName string, attempts int, delay time.Duration) (*Database, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := New(ctx, uri, dbName)
		if err == nil {
			return db, nil
		}
		lastErr = err
		if i < attempts {
			log.Warn().Err(err).Int("attempt", i).Int("remaining", attempts-i).
				Msg("mongodb connection failed, retrying")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// NewFromClient wraps an existing client (for tests).
func NewFromClient(client *mongo.Client, dbName string) *Database {
	d := &Database{client: client}
	if client != nil {
		d.db = client.Database(dbName)
	}
	return d
}

// Close disconnects the client.
func (d *Database) Close(ctx context.Context) {
	if d.client != nil {
		if err := d.client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect error")
		}
	}
}

// Collection returns a handle to a named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Health reports store connectivity.
func (d *Database) Health(ctx context.Context) error {
	if d == nil || d.client == nil {
		return fmt.Errorf("database connection not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the query paths depend on. Index
// creation is idempotent, so this runs on every startup.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	venueIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "address", Value: "text"}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "importance", Value: -1}, {Key: "name", Value: 1}}},
	}
	if _, err := d.Collection(CollectionVenues).Indexes().CreateMany(ctx, venueIndexes); err != nil {
		return fmt.Errorf("failed to create venue indexes: %w", err)
	}

	bannerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}
	if _, err := d.Collection(CollectionBanners).Indexes().CreateMany(ctx, bannerIndexes); err != nil {
		return fmt.Errorf("failed to create banner indexes: %w", err)
	}

	adminIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := d.Collection(CollectionAdmins).Indexes().CreateMany(ctx, adminIndexes); err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}

	return nil
}
