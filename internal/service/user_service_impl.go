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
	pkgdto "smartraw-backend/pkg/dto"
	"smartraw-backend/pkg/errs"
	"smartraw-backend/pkg/utils"
)

// catalogPageSize is fixed; the browse endpoint does not accept a limit.
const catalogPageSize = 10

type UserServiceImpl struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	config      config.Config
}

func CreateUserService(userRepo repository.UserRepository, productRepo repository.ProductRepository, config config.Config) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
		config:      config,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		return respPayload, errs.ErrClient
	}

	email := strings.ToLower(payload.Email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return respPayload, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	location := domain.LatLng{}
	if payload.Location != nil {
		location = *payload.Location
	}

	now := time.Now()
	userEnt := domain.User{
		ExternalID:     ulid.Make().String(),
		Name:           payload.Name,
		Email:          email,
		Phone:          payload.Phone,
		HashedPassword: string(hash),
		Location:       location,
		Cart:           []domain.CartItem{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.userRepo.AddUser(ctx, userEnt)
	if err != nil {
		return
	}

	token, err := utils.CreateJWTToken(id.Hex(), userEnt.Name, s.config.JWTConfig.UserSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.AccountID = id.Hex()
	respPayload.Name = userEnt.Name
	respPayload.Email = userEnt.Email

	return respPayload, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return respPayload, errs.ErrClient
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(payload.Email))
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, s.config.JWTConfig.UserSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.AccountID = user.ID.Hex()
	respPayload.Name = user.Name
	respPayload.Email = user.Email

	return respPayload, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *UserServiceImpl) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Cart == nil {
		return []domain.CartItem{}, nil
	}

	return user.Cart, nil
}

func (s *UserServiceImpl) AddToCart(ctx context.Context, userID string, productID string) ([]domain.CartItem, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// no stock check here; sufficiency is only enforced at placement time
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	matched, err := s.userRepo.IncrementCartItem(ctx, user.ID, product.ID)
	if err != nil {
		return nil, err
	}

	if !matched {
		err = s.userRepo.PushCartItem(ctx, user.ID, domain.CartItem{Product: product.ID, Quantity: 1})
		if err != nil {
			return nil, err
		}
	}

	return s.GetCart(ctx, userID)
}

func (s *UserServiceImpl) UpdateCartItem(ctx context.Context, userID string, payload dto.CartUpdateRequest) ([]domain.CartItem, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		return nil, errs.ErrItemNotInCart
	}

	switch payload.Action {
	case dto.CartActionIncrement:
		matched, err := s.userRepo.IncrementCartItem(ctx, user.ID, productID)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, errs.ErrItemNotInCart
		}
	case dto.CartActionDecrement:
		// an entry at quantity 1 is removed rather than stored at 0
		matched, err := s.userRepo.DecrementCartItem(ctx, user.ID, productID)
		if err != nil {
			return nil, err
		}
		if !matched {
			removed, err := s.userRepo.PullCartItem(ctx, user.ID, productID)
			if err != nil {
				return nil, err
			}
			if !removed {
				return nil, errs.ErrItemNotInCart
			}
		}
	default:
		return nil, errs.ErrClient
	}

	return s.GetCart(ctx, userID)
}

func (s *UserServiceImpl) RemoveCartItem(ctx context.Context, userID string, productID string) ([]domain.CartItem, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, errs.ErrClient
	}

	// removing an absent item is a no-op success
	_, err = s.userRepo.PullCartItem(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *UserServiceImpl) GetProducts(ctx context.Context, param dto.CatalogFilter) (respPayload pkgdto.PaginationResponse, err error) {
	if param.Page < 1 {
		param.Page = 1
	}

	products, total, err := s.productRepo.GetProducts(ctx, param, catalogPageSize)
	if err != nil {
		return
	}

	if products == nil {
		products = []domain.Product{}
	}

	respPayload.Metadata = pkgdto.PaginationMetadata{
		TotalCount: uint64(total),
		Page:       uint64(param.Page),
		Limit:      catalogPageSize,
	}
	respPayload.Records = products

	return respPayload, nil
}
