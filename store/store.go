// Package store provides typed access to the two document collections the
// application persists: users and products.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by single-document lookups when no record matches.
// Absence is a normal outcome; every other store error is a failure.
var ErrNotFound = errors.New("store: record not found")

const databaseName = "storefront"

// Connect establishes the MongoDB client used by all gateways. The client is
// pinged before being returned so a bad connection string fails at startup
// rather than on the first request.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging store: %w", err)
	}
	return client, nil
}
