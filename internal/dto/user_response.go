package dto

import "time"

type PlaceOrderResponse struct {
	ID               string    `json:"id"`
	OrderNumber      string    `json:"order_number"`
	TotalPrice       float64   `json:"total_price"`
	ExpectedDelivery time.Time `json:"expected_delivery"`
	Status           string    `json:"status"`
}
