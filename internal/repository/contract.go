package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
)

type SellerRepository interface {
	AddSeller(ctx context.Context, data domain.Seller) (primitive.ObjectID, error)
	GetSellerByEmail(ctx context.Context, email string) (domain.Seller, error)
	GetSellerByID(ctx context.Context, id string) (domain.Seller, error)
	GetSellers(ctx context.Context) ([]domain.Seller, error)
	SetSellerVerified(ctx context.Context, id string) (domain.Seller, error)
	DeleteSeller(ctx context.Context, id string) error
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	// IncrementCartItem bumps the quantity of an existing cart entry by one.
	// Reports whether an entry matched.
	IncrementCartItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error)
	// DecrementCartItem drops the quantity of a cart entry whose quantity is
	// above one. Reports whether such an entry matched.
	DecrementCartItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error)
	PushCartItem(ctx context.Context, userID primitive.ObjectID, item domain.CartItem) error
	// PullCartItem removes the entry entirely. Reports whether it was present.
	PullCartItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error)
	ClearCart(ctx context.Context, userID primitive.ObjectID) error
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	GetProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]domain.Product, error)
	CountProductsBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error)
	GetProducts(ctx context.Context, param dto.CatalogFilter, limit int64) ([]domain.Product, int64, error)
	UpdateProductStockAndPrice(ctx context.Context, id primitive.ObjectID, stock *int64, price *float64) error
	// DecrementProductStock applies stock -= quantity only when the current
	// stock covers the quantity, as a single conditional update. Reports
	// whether the decrement was applied.
	DecrementProductStock(ctx context.Context, id primitive.ObjectID, quantity int64) (bool, error)
	GetLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error)
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	GetOrdersBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]domain.Order, error)
	CountOrdersBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

type AdminRepository interface {
	AddAdmin(ctx context.Context, data domain.Admin) (primitive.ObjectID, error)
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)
}
