package dto

type SellerLocation struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type SellerRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Phone    string          `json:"phone"`
	Location *SellerLocation `json:"location"`
}

type ProductRequest struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Stock          int64   `json:"stock"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	StockThreshold int64   `json:"stock_threshold"`
}

// StockUpdateRequest carries optional fields; nil means leave unchanged.
type StockUpdateRequest struct {
	ProductID string   `json:"productId"`
	Stock     *int64   `json:"stock"`
	Price     *float64 `json:"price"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}
