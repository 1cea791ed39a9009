package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoJSONPoint is the seller-side location shape, [longitude, latitude].
// Buyers carry the flat LatLng shape instead; the two representations are
// intentionally different, matching the data the frontend already stores.
type GeoJSONPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func DefaultGeoJSONPoint() GeoJSONPoint {
	return GeoJSONPoint{
		Type:        "Point",
		Coordinates: []float64{0, 0},
	}
}

type Seller struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID     string             `bson:"external_id" json:"external_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	HashedPassword string             `bson:"password" json:"-"`
	Location       GeoJSONPoint       `bson:"location" json:"location"`
	Verified       bool               `bson:"verified" json:"verified"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
