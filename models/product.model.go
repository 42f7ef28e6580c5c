package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variant represents one purchasable variation of a product.
type Variant struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Product represents an item in the catalog.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Variants    []Variant          `bson:"variants" json:"variants"`
	Available   bool               `bson:"available" json:"available"`
}
