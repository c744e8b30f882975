package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"api-server/app/config"
)

// Collection names.
const (
	userCollection         = "User"
	englishWordCollection  = "EnglishWord"
	studyHistoryCollection = "StudyHistory"
)

const connectTimeout = 30 * time.Second

// DB wraps a MongoDB client and database handle.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// NewConnection connects to MongoDB and verifies the connection.
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.MongoDatabase),
		logger:   logger,
	}

	if err := db.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	logger.Info("mongo connection established", "database", cfg.MongoDatabase)
	return db, nil
}

// ensureIndexes creates the indexes the repositories rely on. The unique
// index on the provider id is what turns a concurrent first-login race
// into a detectable create-conflict instead of duplicate user records.
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(userCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider.id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.database.Collection(studyHistoryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "studiedAt", Value: -1}},
	})
	return err
}

// Database returns the underlying database handle.
func (db *DB) Database() *mongo.Database {
	return db.database
}

// HealthCheck checks if the database is reachable.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.client == nil {
		return fmt.Errorf("mongo connection is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *DB) Close() {
	if db.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.client.Disconnect(ctx); err != nil {
			db.logger.Error("failed to disconnect mongo client", "error", err)
			return
		}
		db.logger.Info("mongo connection closed")
	}
}
