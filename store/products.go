package store

import (
	"context"
	"fmt"

	"go-storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Products is the gateway to the products collection
type Products struct {
	collection *mongo.Collection
}

// NewProducts creates a Products gateway backed by the given client
func NewProducts(client *mongo.Client) *Products {
	return &Products{
		collection: client.Database(databaseName).Collection("products"),
	}
}

// Insert persists a product as-is and returns the generated id in hex form
func (s *Products) Insert(ctx context.Context, product *models.Product) (string, error) {
	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("inserting product: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return product.ID.Hex(), nil
}

// FindAll returns every product in store-native order
func (s *Products) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("reading products: %w", err)
	}
	return products, nil
}
