package service

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"smartraw-backend/config"
	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/repository"
	"smartraw-backend/pkg/errs"
	"smartraw-backend/pkg/utils"
)

type SellerServiceImpl struct {
	sellerRepo  repository.SellerRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	config      config.Config
}

func CreateSellerService(sellerRepo repository.SellerRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository, config config.Config) SellerService {
	return &SellerServiceImpl{
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		config:      config,
	}
}

func (s *SellerServiceImpl) Register(ctx context.Context, payload dto.SellerRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Name == "" || payload.Email == "" || payload.Password == "" || payload.Phone == "" {
		return respPayload, errs.ErrClient
	}

	email := strings.ToLower(payload.Email)

	seller, err := s.sellerRepo.GetSellerByEmail(ctx, email)
	if err != nil {
		return
	}

	if !seller.ID.IsZero() {
		return respPayload, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	location := domain.DefaultGeoJSONPoint()
	if payload.Location != nil {
		location.Coordinates = []float64{payload.Location.Longitude, payload.Location.Latitude}
	}

	now := time.Now()
	sellerEnt := domain.Seller{
		ExternalID:     ulid.Make().String(),
		Name:           payload.Name,
		Email:          email,
		Phone:          payload.Phone,
		HashedPassword: string(hash),
		Location:       location,
		Verified:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.sellerRepo.AddSeller(ctx, sellerEnt)
	if err != nil {
		return
	}

	token, err := utils.CreateJWTToken(id.Hex(), sellerEnt.Name, s.config.JWTConfig.SellerSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.AccountID = id.Hex()
	respPayload.Name = sellerEnt.Name
	respPayload.Email = sellerEnt.Email

	return respPayload, nil
}

func (s *SellerServiceImpl) Login(ctx context.Context, payload dto.SellerRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return respPayload, errs.ErrClient
	}

	seller, err := s.sellerRepo.GetSellerByEmail(ctx, strings.ToLower(payload.Email))
	if err != nil {
		return
	}

	if seller.ID.IsZero() {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(seller.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(seller.ID.Hex(), seller.Name, s.config.JWTConfig.SellerSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.AccountID = seller.ID.Hex()
	respPayload.Name = seller.Name
	respPayload.Email = seller.Email

	return respPayload, nil
}

func (s *SellerServiceImpl) GetSellerProfile(ctx context.Context, id string) (domain.Seller, error) {
	return s.sellerRepo.GetSellerByID(ctx, id)
}

func (s *SellerServiceImpl) GetDashboard(ctx context.Context, sellerID string) (respPayload dto.DashboardResponse, err error) {
	id, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return respPayload, errs.ErrNotFound
	}

	orders, err := s.orderRepo.GetOrdersBySeller(ctx, id)
	if err != nil {
		return
	}

	totalProducts, err := s.productRepo.CountProductsBySeller(ctx, id)
	if err != nil {
		return
	}

	respPayload.TotalOrders = int64(len(orders))
	respPayload.TotalProducts = totalProducts
	for _, order := range orders {
		respPayload.TotalEarnings += order.TotalPrice
		for _, item := range order.Items {
			respPayload.UnitsSold += item.Quantity
		}
	}

	return respPayload, nil
}

func (s *SellerServiceImpl) AddProduct(ctx context.Context, sellerID string, payload dto.ProductRequest) (product domain.Product, err error) {
	id, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return product, errs.ErrNotFound
	}

	if payload.Name == "" || payload.Price < 0 || payload.Stock < 0 {
		return product, errs.ErrClient
	}

	threshold := payload.StockThreshold
	if threshold <= 0 {
		threshold = domain.DefaultStockThreshold
	}

	now := time.Now()
	product = domain.Product{
		SellerID:       id,
		Name:           payload.Name,
		Description:    payload.Description,
		Image:          payload.Image,
		Price:          payload.Price,
		Stock:          payload.Stock,
		StockThreshold: threshold,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID
	return product, nil
}

func (s *SellerServiceImpl) UpdateStock(ctx context.Context, sellerID string, payload dto.StockUpdateRequest) (product domain.Product, err error) {
	product, err = s.productRepo.GetProductByID(ctx, payload.ProductID)
	if err != nil {
		return
	}

	if product.SellerID.Hex() != sellerID {
		return domain.Product{}, errs.ErrUnauthorized
	}

	if payload.Stock != nil && *payload.Stock < 0 {
		return domain.Product{}, errs.ErrClient
	}
	if payload.Price != nil && *payload.Price < 0 {
		return domain.Product{}, errs.ErrClient
	}

	err = s.productRepo.UpdateProductStockAndPrice(ctx, product.ID, payload.Stock, payload.Price)
	if err != nil {
		return domain.Product{}, err
	}

	if payload.Stock != nil {
		product.Stock = *payload.Stock
	}
	if payload.Price != nil {
		product.Price = *payload.Price
	}

	return product, nil
}

func (s *SellerServiceImpl) GetSellerProducts(ctx context.Context, sellerID string) ([]domain.Product, error) {
	id, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, errs.ErrNotFound
	}

	return s.productRepo.GetProductsBySeller(ctx, id)
}
