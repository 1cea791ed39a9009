package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"smartraw-backend/config"
	"smartraw-backend/internal/domain"
	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/repository"
	"smartraw-backend/pkg/errs"
	"smartraw-backend/pkg/utils"
)

type AdminServiceImpl struct {
	adminRepo  repository.AdminRepository
	sellerRepo repository.SellerRepository
	orderRepo  repository.OrderRepository
	config     config.Config
}

func CreateAdminService(adminRepo repository.AdminRepository, sellerRepo repository.SellerRepository, orderRepo repository.OrderRepository, config config.Config) AdminService {
	return &AdminServiceImpl{
		adminRepo:  adminRepo,
		sellerRepo: sellerRepo,
		orderRepo:  orderRepo,
		config:     config,
	}
}

func (s *AdminServiceImpl) Register(ctx context.Context, payload dto.AdminRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		return respPayload, errs.ErrClient
	}

	email := strings.ToLower(payload.Email)

	admin, err := s.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		return
	}

	if !admin.ID.IsZero() {
		return respPayload, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	adminEnt := domain.Admin{
		Name:           payload.Name,
		Email:          email,
		HashedPassword: string(hash),
		CreatedAt:      time.Now(),
	}

	id, err := s.adminRepo.AddAdmin(ctx, adminEnt)
	if err != nil {
		return
	}

	token, err := utils.CreateJWTToken(id.Hex(), adminEnt.Name, s.config.JWTConfig.AdminSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.AccountID = id.Hex()
	respPayload.Name = adminEnt.Name
	respPayload.Email = adminEnt.Email

	return respPayload, nil
}

func (s *AdminServiceImpl) Login(ctx context.Context, payload dto.AdminRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return respPayload, errs.ErrClient
	}

	admin, err := s.adminRepo.GetAdminByEmail(ctx, strings.ToLower(payload.Email))
	if err != nil {
		return
	}

	if admin.ID.IsZero() {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(admin.ID.Hex(), admin.Name, s.config.JWTConfig.AdminSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.AccountID = admin.ID.Hex()
	respPayload.Name = admin.Name
	respPayload.Email = admin.Email

	return respPayload, nil
}

func (s *AdminServiceImpl) GetSellers(ctx context.Context) ([]domain.Seller, error) {
	return s.sellerRepo.GetSellers(ctx)
}

func (s *AdminServiceImpl) VerifySeller(ctx context.Context, id string) (domain.Seller, error) {
	return s.sellerRepo.SetSellerVerified(ctx, id)
}

// RemoveSeller deletes the seller document only. Its products and orders are
// left behind; there is no cascade.
func (s *AdminServiceImpl) RemoveSeller(ctx context.Context, id string) error {
	return s.sellerRepo.DeleteSeller(ctx, id)
}

func (s *AdminServiceImpl) GetRankedSellers(ctx context.Context) ([]dto.RankedSellerResponse, error) {
	sellers, err := s.sellerRepo.GetSellers(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]dto.RankedSellerResponse, 0, len(sellers))
	for _, seller := range sellers {
		count, err := s.orderRepo.CountOrdersBySeller(ctx, seller.ID)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, dto.RankedSellerResponse{Seller: seller, TotalOrders: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalOrders > ranked[j].TotalOrders
	})

	return ranked, nil
}
