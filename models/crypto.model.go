package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CryptoAddressKey is the fixed key of the single crypto-addresses document.
// The collection holds at most one record; keying it explicitly avoids
// "first document found" ambiguity if two lazy creations ever race.
const CryptoAddressKey = "default"

// CryptoAddresses is the singleton record holding the shop's payment
// addresses, one per supported currency.
type CryptoAddresses struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key       string             `bson:"key" json:"-"`
	Bitcoin   string             `bson:"bitcoin" json:"bitcoin"`
	Ethereum  string             `bson:"ethereum" json:"ethereum"`
	USDT      string             `bson:"usdt" json:"usdt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
