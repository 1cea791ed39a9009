package dto

import "time"

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type OrderPlacedEvent struct {
	OrderNumber      string    `json:"order_number"`
	SellerID         string    `json:"seller_id"`
	TotalPrice       float64   `json:"total_price"`
	ExpectedDelivery time.Time `json:"expected_delivery"`
}

type LowStockEvent struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Stock          int64  `json:"stock"`
	StockThreshold int64  `json:"stock_threshold"`
}
