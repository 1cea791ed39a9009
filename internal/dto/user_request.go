package dto

import "smartraw-backend/internal/domain"

type UserRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Phone    string         `json:"phone"`
	Location *domain.LatLng `json:"location"`
}

type CartAddRequest struct {
	ProductID string `json:"productId"`
}

const (
	CartActionIncrement = "increment"
	CartActionDecrement = "decrement"
)

type CartUpdateRequest struct {
	ProductID string `json:"productId"`
	Action    string `json:"action"`
}

type OrderItemRequest struct {
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
}

type OrderRequest struct {
	CartItems []OrderItemRequest `json:"cartItems"`
}

type CatalogFilter struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
	Page   int64  `query:"page"`
}
