package service

import (
	"context"

	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	pkgdto "smartraw-backend/pkg/dto"
)

type SellerService interface {
	Register(ctx context.Context, payload dto.SellerRequest) (dto.LoginResponse, error)
	Login(ctx context.Context, payload dto.SellerRequest) (dto.LoginResponse, error)
	GetSellerProfile(ctx context.Context, id string) (domain.Seller, error)
	GetDashboard(ctx context.Context, sellerID string) (dto.DashboardResponse, error)
	AddProduct(ctx context.Context, sellerID string, payload dto.ProductRequest) (domain.Product, error)
	UpdateStock(ctx context.Context, sellerID string, payload dto.StockUpdateRequest) (domain.Product, error)
	GetSellerProducts(ctx context.Context, sellerID string) ([]domain.Product, error)
}

type UserService interface {
	Register(ctx context.Context, payload dto.UserRequest) (dto.LoginResponse, error)
	Login(ctx context.Context, payload dto.UserRequest) (dto.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (domain.User, error)
	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, userID string, productID string) ([]domain.CartItem, error)
	UpdateCartItem(ctx context.Context, userID string, payload dto.CartUpdateRequest) ([]domain.CartItem, error)
	RemoveCartItem(ctx context.Context, userID string, productID string) ([]domain.CartItem, error)
	GetProducts(ctx context.Context, param dto.CatalogFilter) (pkgdto.PaginationResponse, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, payload dto.OrderRequest) (dto.PlaceOrderResponse, error)
	GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetSellerOrders(ctx context.Context, sellerID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, sellerID string, orderID string, status string) (domain.Order, error)
}

type AdminService interface {
	Register(ctx context.Context, payload dto.AdminRequest) (dto.LoginResponse, error)
	Login(ctx context.Context, payload dto.AdminRequest) (dto.LoginResponse, error)
	GetSellers(ctx context.Context) ([]domain.Seller, error)
	VerifySeller(ctx context.Context, id string) (domain.Seller, error)
	RemoveSeller(ctx context.Context, id string) error
	GetRankedSellers(ctx context.Context) ([]dto.RankedSellerResponse, error)
}
