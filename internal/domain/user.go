package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// CartItem is one entry of the cart embedded in the user document.
// Quantity is always >= 1; an entry that would reach 0 is removed instead.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int64              `bson:"quantity" json:"quantity"`
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID     string             `bson:"external_id" json:"external_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	HashedPassword string             `bson:"password" json:"-"`
	Location       LatLng             `bson:"location" json:"location"`
	Cart           []CartItem         `bson:"cart" json:"cart"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
