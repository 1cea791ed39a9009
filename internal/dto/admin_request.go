package dto

import "smartraw-backend/internal/domain"

type AdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RankedSellerResponse struct {
	Seller      domain.Seller `json:"seller"`
	TotalOrders int64         `json:"total_orders"`
}
