package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/service"
	"smartraw-backend/pkg/errs"
)

type userFixture struct {
	userRepo    *fakeUserRepo
	productRepo *fakeProductRepo
	svc         service.UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo:    newFakeUserRepo(),
		productRepo: newFakeProductRepo(),
	}
	f.svc = service.CreateUserService(f.userRepo, f.productRepo, testConfig())
	return f
}

func (f *userFixture) register(t *testing.T, email string) dto.LoginResponse {
	t.Helper()
	resp, err := f.svc.Register(context.Background(), dto.UserRequest{
		Name:     "Jane",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return resp
}

func (f *userFixture) seedProduct(t *testing.T, name string, price float64, stock int64) domain.Product {
	t.Helper()
	id, err := f.productRepo.AddProduct(context.Background(), domain.Product{
		SellerID:       primitive.NewObjectID(),
		Name:           name,
		Price:          price,
		Stock:          stock,
		StockThreshold: domain.DefaultStockThreshold,
	})
	require.NoError(t, err)
	product, err := f.productRepo.GetProductByID(context.Background(), id.Hex())
	require.NoError(t, err)
	return product
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newUserFixture()
	f.register(t, "jane@example.com")

	// differing case is the same address
	_, err := f.svc.Register(context.Background(), dto.UserRequest{
		Name:     "Jane Again",
		Email:    "JANE@Example.COM",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
}

func TestRegisterMissingFields(t *testing.T) {
	f := newUserFixture()

	_, err := f.svc.Register(context.Background(), dto.UserRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestLogin(t *testing.T) {
	f := newUserFixture()
	f.register(t, "jane@example.com")

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedErr error
	}{
		{name: "valid credentials", email: "jane@example.com", password: "secret123"},
		{name: "case-insensitive email", email: "Jane@Example.com", password: "secret123"},
		{name: "wrong password", email: "jane@example.com", password: "nope", expectedErr: errs.ErrInvalidCredentialsEmail},
		{name: "unknown account", email: "john@example.com", password: "secret123", expectedErr: errs.ErrAccountNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := f.svc.Login(context.Background(), dto.UserRequest{Email: tc.email, Password: tc.password})
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestAddToCart(t *testing.T) {
	f := newUserFixture()
	account := f.register(t, "jane@example.com")
	product := f.seedProduct(t, "Raw honey", 30, 5)

	cart, err := f.svc.AddToCart(context.Background(), account.AccountID, product.ID.Hex())
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].Quantity)

	// adding the same product again merges into the existing entry
	cart, err = f.svc.AddToCart(context.Background(), account.AccountID, product.ID.Hex())
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(2), cart[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	f := newUserFixture()
	account := f.register(t, "jane@example.com")

	_, err := f.svc.AddToCart(context.Background(), account.AccountID, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

// No sequence of cart operations may leave an entry at quantity zero or below.
func TestCartQuantityNeverBelowOne(t *testing.T) {
	f := newUserFixture()
	account := f.register(t, "jane@example.com")
	product := f.seedProduct(t, "Raw honey", 30, 5)

	_, err := f.svc.AddToCart(context.Background(), account.AccountID, product.ID.Hex())
	require.NoError(t, err)

	cart, err := f.svc.UpdateCartItem(context.Background(), account.AccountID, dto.CartUpdateRequest{
		ProductID: product.ID.Hex(),
		Action:    dto.CartActionIncrement,
	})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(2), cart[0].Quantity)

	cart, err = f.svc.UpdateCartItem(context.Background(), account.AccountID, dto.CartUpdateRequest{
		ProductID: product.ID.Hex(),
		Action:    dto.CartActionDecrement,
	})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].Quantity)

	// decrementing past one removes the entry instead of storing zero
	cart, err = f.svc.UpdateCartItem(context.Background(), account.AccountID, dto.CartUpdateRequest{
		ProductID: product.ID.Hex(),
		Action:    dto.CartActionDecrement,
	})
	require.NoError(t, err)
	assert.Empty(t, cart)

	for _, item := range cart {
		assert.GreaterOrEqual(t, item.Quantity, int64(1))
	}
}

func TestUpdateCartItemNotInCart(t *testing.T) {
	f := newUserFixture()
	account := f.register(t, "jane@example.com")

	_, err := f.svc.UpdateCartItem(context.Background(), account.AccountID, dto.CartUpdateRequest{
		ProductID: primitive.NewObjectID().Hex(),
		Action:    dto.CartActionIncrement,
	})
	assert.ErrorIs(t, err, errs.ErrItemNotInCart)
}

func TestUpdateCartItemUnknownAction(t *testing.T) {
	f := newUserFixture()
	account := f.register(t, "jane@example.com")

	_, err := f.svc.UpdateCartItem(context.Background(), account.AccountID, dto.CartUpdateRequest{
		ProductID: primitive.NewObjectID().Hex(),
		Action:    "duplicate",
	})
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestRemoveCartItemIsIdempotent(t *testing.T) {
	f := newUserFixture()
	account := f.register(t, "jane@example.com")
	product := f.seedProduct(t, "Raw honey", 30, 5)

	_, err := f.svc.AddToCart(context.Background(), account.AccountID, product.ID.Hex())
	require.NoError(t, err)

	cart, err := f.svc.RemoveCartItem(context.Background(), account.AccountID, product.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart)

	// removing again is a no-op success
	cart, err = f.svc.RemoveCartItem(context.Background(), account.AccountID, product.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestGetProducts(t *testing.T) {
	f := newUserFixture()
	f.seedProduct(t, "Raw honey", 30, 5)
	f.seedProduct(t, "Olive oil", 10, 2)
	f.seedProduct(t, "Sold out syrup", 5, 0)

	resp, err := f.svc.GetProducts(context.Background(), dto.CatalogFilter{Sort: "price_asc"})
	require.NoError(t, err)

	records, ok := resp.Records.([]domain.Product)
	require.True(t, ok)
	require.Len(t, records, 2, "out-of-stock products are hidden")
	assert.Equal(t, "Olive oil", records[0].Name)
	assert.Equal(t, uint64(2), resp.Metadata.TotalCount)
	assert.Equal(t, 10, resp.Metadata.Limit)
}

func TestGetProductsSearch(t *testing.T) {
	f := newUserFixture()
	f.seedProduct(t, "Raw honey", 30, 5)
	f.seedProduct(t, "Olive oil", 10, 2)

	resp, err := f.svc.GetProducts(context.Background(), dto.CatalogFilter{Search: "HONEY"})
	require.NoError(t, err)

	records, ok := resp.Records.([]domain.Product)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "Raw honey", records[0].Name)
}
