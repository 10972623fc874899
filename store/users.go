package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Users is the gateway to the users collection
type Users struct {
	collection *mongo.Collection
}

// NewUsers creates a Users gateway backed by the given client
func NewUsers(client *mongo.Client) *Users {
	return &Users{
		collection: client.Database(databaseName).Collection("users"),
	}
}

// Insert persists a new user and stamps its creation timestamps. The
// generated id is written back onto the record and returned in hex form.
func (s *Users) Insert(ctx context.Context, user *models.User) (string, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("inserting user: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user.ID.Hex(), nil
}

// FindByEmail looks up a user by email, the collection's unique key.
// Returns ErrNotFound when no user matches.
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &user, nil
}

// FindAll returns every user in the collection
func (s *Users) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("reading users: %w", err)
	}
	return users, nil
}
