package dto

type LoginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type DashboardResponse struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalProducts int64   `json:"total_products"`
	TotalEarnings float64 `json:"total_earnings"`
	UnitsSold     int64   `json:"units_sold"`
}
