package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/service"
	"smartraw-backend/pkg/errs"
)

type sellerFixture struct {
	sellerRepo  *fakeSellerRepo
	productRepo *fakeProductRepo
	orderRepo   *fakeOrderRepo
	svc         service.SellerService
}

func newSellerFixture() *sellerFixture {
	f := &sellerFixture{
		sellerRepo:  newFakeSellerRepo(),
		productRepo: newFakeProductRepo(),
		orderRepo:   newFakeOrderRepo(),
	}
	f.svc = service.CreateSellerService(f.sellerRepo, f.productRepo, f.orderRepo, testConfig())
	return f
}

func (f *sellerFixture) register(t *testing.T, email string) dto.LoginResponse {
	t.Helper()
	resp, err := f.svc.Register(context.Background(), dto.SellerRequest{
		Name:     "Raw Goods Co",
		Email:    email,
		Password: "secret123",
		Phone:    "0811111111",
	})
	require.NoError(t, err)
	return resp
}

func TestSellerRegister(t *testing.T) {
	f := newSellerFixture()
	account := f.register(t, "shop@example.com")

	assert.NotEmpty(t, account.Token)

	seller, err := f.sellerRepo.GetSellerByID(context.Background(), account.AccountID)
	require.NoError(t, err)
	assert.False(t, seller.Verified)
	assert.Equal(t, "Point", seller.Location.Type)
	assert.Equal(t, []float64{0, 0}, seller.Location.Coordinates)
	assert.NotEqual(t, "secret123", seller.HashedPassword)
}

func TestSellerRegisterDuplicateEmail(t *testing.T) {
	f := newSellerFixture()
	f.register(t, "shop@example.com")

	_, err := f.svc.Register(context.Background(), dto.SellerRequest{
		Name:     "Another Shop",
		Email:    "Shop@Example.COM",
		Password: "secret123",
		Phone:    "0822222222",
	})
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
}

func TestSellerRegisterMissingPhone(t *testing.T) {
	f := newSellerFixture()

	_, err := f.svc.Register(context.Background(), dto.SellerRequest{
		Name:     "Raw Goods Co",
		Email:    "shop@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestAddProduct(t *testing.T) {
	f := newSellerFixture()
	account := f.register(t, "shop@example.com")

	product, err := f.svc.AddProduct(context.Background(), account.AccountID, dto.ProductRequest{
		Name:  "Raw honey",
		Price: 30,
		Stock: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, account.AccountID, product.SellerID.Hex())
	assert.Equal(t, int64(domain.DefaultStockThreshold), product.StockThreshold)
	assert.False(t, product.ID.IsZero())
}

func TestAddProductRejectsNegativeValues(t *testing.T) {
	f := newSellerFixture()
	account := f.register(t, "shop@example.com")

	testCases := []struct {
		name    string
		payload dto.ProductRequest
	}{
		{name: "missing name", payload: dto.ProductRequest{Price: 30, Stock: 5}},
		{name: "negative price", payload: dto.ProductRequest{Name: "Raw honey", Price: -1, Stock: 5}},
		{name: "negative stock", payload: dto.ProductRequest{Name: "Raw honey", Price: 30, Stock: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AddProduct(context.Background(), account.AccountID, tc.payload)
			assert.ErrorIs(t, err, errs.ErrClient)
		})
	}
}

func TestUpdateStock(t *testing.T) {
	f := newSellerFixture()
	account := f.register(t, "shop@example.com")

	product, err := f.svc.AddProduct(context.Background(), account.AccountID, dto.ProductRequest{
		Name:  "Raw honey",
		Price: 30,
		Stock: 5,
	})
	require.NoError(t, err)

	newStock := int64(12)
	newPrice := float64(35)
	updated, err := f.svc.UpdateStock(context.Background(), account.AccountID, dto.StockUpdateRequest{
		ProductID: product.ID.Hex(),
		Stock:     &newStock,
		Price:     &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.Stock)
	assert.Equal(t, float64(35), updated.Price)
}

func TestUpdateStockNotOwner(t *testing.T) {
	f := newSellerFixture()
	owner := f.register(t, "shop@example.com")
	other := f.register(t, "other@example.com")

	product, err := f.svc.AddProduct(context.Background(), owner.AccountID, dto.ProductRequest{
		Name:  "Raw honey",
		Price: 30,
		Stock: 5,
	})
	require.NoError(t, err)

	newStock := int64(0)
	_, err = f.svc.UpdateStock(context.Background(), other.AccountID, dto.StockUpdateRequest{
		ProductID: product.ID.Hex(),
		Stock:     &newStock,
	})
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	unchanged, err := f.productRepo.GetProductByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(5), unchanged.Stock)
}

func TestUpdateStockUnknownProduct(t *testing.T) {
	f := newSellerFixture()
	account := f.register(t, "shop@example.com")

	_, err := f.svc.UpdateStock(context.Background(), account.AccountID, dto.StockUpdateRequest{
		ProductID: primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDashboard(t *testing.T) {
	f := newSellerFixture()
	account := f.register(t, "shop@example.com")
	sellerID, err := primitive.ObjectIDFromHex(account.AccountID)
	require.NoError(t, err)

	_, err = f.svc.AddProduct(context.Background(), account.AccountID, dto.ProductRequest{Name: "Raw honey", Price: 30, Stock: 5})
	require.NoError(t, err)

	_, err = f.orderRepo.AddOrder(context.Background(), domain.Order{
		Seller:     sellerID,
		TotalPrice: 90,
		OrderedAt:  time.Now(),
		Items: []domain.OrderItem{
			{Name: "Raw honey", Quantity: 2, Price: 30},
			{Name: "Olive oil", Quantity: 1, Price: 30},
		},
	})
	require.NoError(t, err)

	dashboard, err := f.svc.GetDashboard(context.Background(), account.AccountID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), dashboard.TotalOrders)
	assert.Equal(t, int64(1), dashboard.TotalProducts)
	assert.Equal(t, float64(90), dashboard.TotalEarnings)
	assert.Equal(t, int64(3), dashboard.UnitsSold)
}
