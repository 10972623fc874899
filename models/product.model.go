package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog entry. Price is kept as text, matching how
// the catalog stores it.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Price       string             `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
}
