package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/service"
	pkgdto "smartraw-backend/pkg/dto"
	"smartraw-backend/pkg/utils"
)

type SellerController struct {
	sellerService service.SellerService
	orderService  service.OrderService
}

func CreateSellerController(e *echo.Group, sellerService service.SellerService, orderService service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := SellerController{
		sellerService: sellerService,
		orderService:  orderService,
	}

	e.POST("/register", c.Register)
	e.POST("/login", c.Login)
	e.GET("/profile/:id", c.GetProfile)
	e.GET("/dashboard", c.GetDashboard, isLoggedIn)
	e.POST("/add-product", c.AddProduct, isLoggedIn)
	e.PUT("/update-stock", c.UpdateStock, isLoggedIn)
	e.GET("/products", c.GetProducts, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn)
	e.PUT("/orders/:id/status", c.UpdateOrderStatus, isLoggedIn)
}

func (c *SellerController) Register(e echo.Context) error {
	payload := dto.SellerRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	respPayload, err := c.sellerService.Register(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Seller registered successfully", respPayload)
}

func (c *SellerController) Login(e echo.Context) error {
	payload := dto.SellerRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.sellerService.Login(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", respPayload)
}

func (c *SellerController) GetProfile(e echo.Context) error {
	seller, err := c.sellerService.GetSellerProfile(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", seller)
}

func (c *SellerController) GetDashboard(e echo.Context) error {
	sellerID, _ := utils.ExtractTokenAccount(e)

	respPayload, err := c.sellerService.GetDashboard(e.Request().Context(), sellerID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", respPayload)
}

func (c *SellerController) AddProduct(e echo.Context) error {
	sellerID, _ := utils.ExtractTokenAccount(e)

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	product, err := c.sellerService.AddProduct(e.Request().Context(), sellerID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Product added successfully", product)
}

func (c *SellerController) UpdateStock(e echo.Context) error {
	sellerID, _ := utils.ExtractTokenAccount(e)

	payload := dto.StockUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateStock").Msg("")
	}

	product, err := c.sellerService.UpdateStock(e.Request().Context(), sellerID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Product updated successfully", product)
}

func (c *SellerController) GetProducts(e echo.Context) error {
	sellerID, _ := utils.ExtractTokenAccount(e)

	products, err := c.sellerService.GetSellerProducts(e.Request().Context(), sellerID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", products)
}

func (c *SellerController) GetOrders(e echo.Context) error {
	sellerID, _ := utils.ExtractTokenAccount(e)

	orders, err := c.orderService.GetSellerOrders(e.Request().Context(), sellerID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}

func (c *SellerController) UpdateOrderStatus(e echo.Context) error {
	sellerID, _ := utils.ExtractTokenAccount(e)

	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	order, err := c.orderService.UpdateOrderStatus(e.Request().Context(), sellerID, e.Param("id"), payload.Status)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Order status updated", order)
}
