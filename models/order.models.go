package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is one line of an order, referencing a catalog product.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Variant   string             `bson:"variant,omitempty" json:"variant,omitempty"`
}

// BillingInfo holds the buyer's billing details as submitted at checkout.
type BillingInfo struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	ZipCode string `bson:"zipcode,omitempty" json:"zipcode,omitempty"`
}

// PaymentAddresses is the snapshot of crypto addresses shown to the buyer at
// checkout time, stored with the order.
type PaymentAddresses struct {
	Bitcoin  string `bson:"bitcoin,omitempty" json:"bitcoin,omitempty"`
	Ethereum string `bson:"ethereum,omitempty" json:"ethereum,omitempty"`
	USDT     string `bson:"usdt,omitempty" json:"usdt,omitempty"`
}

// Order represents a placed order. User and the per-item products are stored
// as references and resolved to full records on listing.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           primitive.ObjectID `bson:"user" json:"user"`
	Products         []OrderItem        `bson:"products" json:"products"`
	Total            float64            `bson:"total" json:"total"`
	BillingInfo      BillingInfo        `bson:"billing_info" json:"billingInfo"`
	PaymentAddresses PaymentAddresses   `bson:"payment_addresses" json:"paymentAddresses"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
}

// PopulatedOrderItem is an OrderItem with its product reference resolved.
type PopulatedOrderItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
	Variant  string   `json:"variant,omitempty"`
}

// PopulatedOrder is an Order with user and product references resolved for
// listing. Unresolvable references are returned as null rather than failing
// the whole listing.
type PopulatedOrder struct {
	ID               primitive.ObjectID   `json:"id"`
	User             *User                `json:"user"`
	Products         []PopulatedOrderItem `json:"products"`
	Total            float64              `json:"total"`
	BillingInfo      BillingInfo          `json:"billingInfo"`
	PaymentAddresses PaymentAddresses     `json:"paymentAddresses"`
	Status           string               `json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
}
