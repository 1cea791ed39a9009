package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusPlaced     = "Placed"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusPlaced:     {},
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func IsValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}

// OrderItem is a snapshot taken at placement time. Later edits to the
// product's name or price never reach back into it.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
	Price     float64            `bson:"price" json:"price"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber      string             `bson:"order_number" json:"order_number"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	Seller           primitive.ObjectID `bson:"seller" json:"seller"`
	UserName         string             `bson:"user_name" json:"user_name"`
	UserPhone        string             `bson:"user_phone" json:"user_phone"`
	UserLocation     LatLng             `bson:"user_location" json:"user_location"`
	Items            []OrderItem        `bson:"items" json:"items"`
	TotalPrice       float64            `bson:"total_price" json:"total_price"`
	OrderedAt        time.Time          `bson:"ordered_at" json:"ordered_at"`
	ExpectedDelivery time.Time          `bson:"expected_delivery" json:"expected_delivery"`
	Status           string             `bson:"status" json:"status"`
}
