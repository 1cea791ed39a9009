package service_test

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartraw-backend/config"
	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/pkg/errs"
)

func testConfig() config.Config {
	return config.Config{
		JWTConfig: config.JWTConfig{
			SellerSecret: "seller-test-secret",
			UserSecret:   "user-test-secret",
			AdminSecret:  "admin-test-secret",
		},
	}
}

// In-memory repositories mirroring the MongoDB implementations' contracts.

type fakeSellerRepo struct {
	sellers map[primitive.ObjectID]*domain.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: map[primitive.ObjectID]*domain.Seller{}}
}

func (r *fakeSellerRepo) AddSeller(_ context.Context, data domain.Seller) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.sellers[data.ID] = &data
	return data.ID, nil
}

func (r *fakeSellerRepo) GetSellerByEmail(_ context.Context, email string) (domain.Seller, error) {
	for _, seller := range r.sellers {
		if seller.Email == email {
			return *seller, nil
		}
	}
	return domain.Seller{}, nil
}

func (r *fakeSellerRepo) GetSellerByID(_ context.Context, id string) (domain.Seller, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Seller{}, errs.ErrNotFound
	}
	seller, ok := r.sellers[oid]
	if !ok {
		return domain.Seller{}, errs.ErrNotFound
	}
	return *seller, nil
}

func (r *fakeSellerRepo) GetSellers(_ context.Context) ([]domain.Seller, error) {
	out := make([]domain.Seller, 0, len(r.sellers))
	for _, seller := range r.sellers {
		out = append(out, *seller)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSellerRepo) SetSellerVerified(_ context.Context, id string) (domain.Seller, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Seller{}, errs.ErrNotFound
	}
	seller, ok := r.sellers[oid]
	if !ok {
		return domain.Seller{}, errs.ErrNotFound
	}
	seller.Verified = true
	return *seller, nil
}

func (r *fakeSellerRepo) DeleteSeller(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}
	if _, ok := r.sellers[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(r.sellers, oid)
	return nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *fakeUserRepo) AddUser(_ context.Context, data domain.User) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.users[data.ID] = &data
	return data.ID, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return *user, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, errs.ErrNotFound
	}
	user, ok := r.users[oid]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return *user, nil
}

func (r *fakeUserRepo) IncrementCartItem(_ context.Context, userID, productID primitive.ObjectID) (bool, error) {
	user, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	for i := range user.Cart {
		if user.Cart[i].Product == productID {
			user.Cart[i].Quantity++
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) DecrementCartItem(_ context.Context, userID, productID primitive.ObjectID) (bool, error) {
	user, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	for i := range user.Cart {
		if user.Cart[i].Product == productID && user.Cart[i].Quantity > 1 {
			user.Cart[i].Quantity--
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) PushCartItem(_ context.Context, userID primitive.ObjectID, item domain.CartItem) error {
	user, ok := r.users[userID]
	if !ok {
		return errs.ErrNotFound
	}
	user.Cart = append(user.Cart, item)
	return nil
}

func (r *fakeUserRepo) PullCartItem(_ context.Context, userID, productID primitive.ObjectID) (bool, error) {
	user, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	for i := range user.Cart {
		if user.Cart[i].Product == productID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ClearCart(_ context.Context, userID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return errs.ErrNotFound
	}
	user.Cart = []domain.CartItem{}
	return nil
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[primitive.ObjectID]*domain.Product{}}
}

func (r *fakeProductRepo) AddProduct(_ context.Context, data domain.Product) (primitive.ObjectID, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.products[data.ID] = &data
	return data.ID, nil
}

func (r *fakeProductRepo) GetProductByID(_ context.Context, id string) (domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrNotFound
	}
	product, ok := r.products[oid]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return *product, nil
}

func (r *fakeProductRepo) GetProductsBySeller(_ context.Context, sellerID primitive.ObjectID) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range r.products {
		if product.SellerID == sellerID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountProductsBySeller(_ context.Context, sellerID primitive.ObjectID) (int64, error) {
	var count int64
	for _, product := range r.products {
		if product.SellerID == sellerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) GetProducts(_ context.Context, param dto.CatalogFilter, limit int64) ([]domain.Product, int64, error) {
	var matched []domain.Product
	for _, product := range r.products {
		if product.Stock <= 0 {
			continue
		}
		if param.Search != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(param.Search)) {
			continue
		}
		matched = append(matched, *product)
	}

	switch param.Sort {
	case "price_asc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case "price_desc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case "name_asc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	case "name_desc":
		sort.Slice(matched, func(i, j int) bool { return matched[i].Name > matched[j].Name })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	}

	total := int64(len(matched))

	page := param.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= total {
		return []domain.Product{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *fakeProductRepo) UpdateProductStockAndPrice(_ context.Context, id primitive.ObjectID, stock *int64, price *float64) error {
	product, ok := r.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	if stock != nil {
		product.Stock = *stock
	}
	if price != nil {
		product.Price = *price
	}
	return nil
}

func (r *fakeProductRepo) DecrementProductStock(_ context.Context, id primitive.ObjectID, quantity int64) (bool, error) {
	product, ok := r.products[id]
	if !ok {
		return false, nil
	}
	if product.Stock < quantity {
		return false, nil
	}
	product.Stock -= quantity
	return true, nil
}

func (r *fakeProductRepo) GetLowStockProducts(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range r.products {
		if product.Stock < product.StockThreshold {
			out = append(out, *product)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[primitive.ObjectID]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[primitive.ObjectID]*domain.Order{}}
}

func (r *fakeOrderRepo) AddOrder(_ context.Context, data domain.Order) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.orders[data.ID] = &data
	return data.ID, nil
}

func (r *fakeOrderRepo) GetOrderByID(_ context.Context, id string) (domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Order{}, errs.ErrNotFound
	}
	order, ok := r.orders[oid]
	if !ok {
		return domain.Order{}, errs.ErrNotFound
	}
	return *order, nil
}

func (r *fakeOrderRepo) GetOrdersByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	return r.filterOrders(func(o *domain.Order) bool { return o.User == userID }), nil
}

func (r *fakeOrderRepo) GetOrdersBySeller(_ context.Context, sellerID primitive.ObjectID) ([]domain.Order, error) {
	return r.filterOrders(func(o *domain.Order) bool { return o.Seller == sellerID }), nil
}

func (r *fakeOrderRepo) filterOrders(keep func(*domain.Order) bool) []domain.Order {
	var out []domain.Order
	for _, order := range r.orders {
		if keep(order) {
			out = append(out, *order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderedAt.After(out[j].OrderedAt) })
	return out
}

func (r *fakeOrderRepo) CountOrdersBySeller(_ context.Context, sellerID primitive.ObjectID) (int64, error) {
	orders, _ := r.GetOrdersBySeller(context.Background(), sellerID)
	return int64(len(orders)), nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(_ context.Context, id primitive.ObjectID, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return errs.ErrNotFound
	}
	order.Status = status
	return nil
}

type fakeAdminRepo struct {
	admins map[primitive.ObjectID]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[primitive.ObjectID]*domain.Admin{}}
}

func (r *fakeAdminRepo) AddAdmin(_ context.Context, data domain.Admin) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.admins[data.ID] = &data
	return data.ID, nil
}

func (r *fakeAdminRepo) GetAdminByEmail(_ context.Context, email string) (domain.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			return *admin, nil
		}
	}
	return domain.Admin{}, nil
}
