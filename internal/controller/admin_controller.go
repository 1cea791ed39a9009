package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/service"
	pkgdto "smartraw-backend/pkg/dto"
)

type AdminController struct {
	adminService service.AdminService
}

func CreateAdminController(e *echo.Group, adminService service.AdminService, isLoggedIn echo.MiddlewareFunc) {
	c := AdminController{
		adminService: adminService,
	}

	e.POST("/register", c.Register)
	e.POST("/login", c.Login)
	e.GET("/sellers", c.GetSellers, isLoggedIn)
	e.PUT("/verify-seller/:id", c.VerifySeller, isLoggedIn)
	e.DELETE("/remove-seller/:id", c.RemoveSeller, isLoggedIn)
	e.GET("/ranked-sellers", c.GetRankedSellers, isLoggedIn)
}

func (c *AdminController) Register(e echo.Context) error {
	payload := dto.AdminRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	respPayload, err := c.adminService.Register(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Admin registered successfully", respPayload)
}

func (c *AdminController) Login(e echo.Context) error {
	payload := dto.AdminRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.adminService.Login(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", respPayload)
}

func (c *AdminController) GetSellers(e echo.Context) error {
	sellers, err := c.adminService.GetSellers(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", sellers)
}

func (c *AdminController) VerifySeller(e echo.Context) error {
	seller, err := c.adminService.VerifySeller(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Seller verified", seller)
}

func (c *AdminController) RemoveSeller(e echo.Context) error {
	err := c.adminService.RemoveSeller(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Seller removed", nil)
}

func (c *AdminController) GetRankedSellers(e echo.Context) error {
	ranked, err := c.adminService.GetRankedSellers(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", ranked)
}
