package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	usersCollection = "users"
	todosCollection = "todos"

	connectTimeout = 10 * time.Second
)

// NewMongoDB establishes a new connection to the MongoDB server and returns
// a handle on the named database.
func NewMongoDB(ctx context.Context, uri, name string, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Successfully connected to the database!")
	return client, client.Database(name), nil
}

// EnsureIndexes creates the unique index on users.username. The signup flow
// still performs a cooperative lookup first; the index only closes the
// check-then-insert race between concurrent signups.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	logger.Info("Database indexes ensured")
	return nil
}
