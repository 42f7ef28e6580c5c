package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. Password holds the bcrypt digest
// and is never serialized to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Firstname string             `bson:"firstname" json:"firstname"`
	Lastname  string             `bson:"lastname" json:"lastname"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`     // "user" or "admin"
	Status    string             `bson:"status" json:"status"` // "active" or "inactive"
}

// PublicUser is the subset of User echoed back by registration, login and
// admin creation.
type PublicUser struct {
	ID       primitive.ObjectID `json:"id"`
	Email    string             `json:"email"`
	Username string             `json:"username"`
	Role     string             `json:"role,omitempty"`
	Status   string             `json:"status,omitempty"`
}
