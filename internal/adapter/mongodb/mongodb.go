package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect opens a client and verifies the deployment is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the part collection indexes. The unique index on
// partNumber is what enforces the duplicate-rejection invariant; it is the
// store's job, not the application's.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "partNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "carBrand", Value: 1}}},
		{Keys: bson.D{{Key: "partBrand", Value: 1}}},
		{Keys: bson.D{{Key: "partName", Value: "text"}}},
	})
	if err != nil {
		return fmt.Errorf("mongodb create indexes: %w", err)
	}
	return nil
}
