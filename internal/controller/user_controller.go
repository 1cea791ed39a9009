package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"smartraw-backend/internal/dto"
	"smartraw-backend/internal/service"
	pkgdto "smartraw-backend/pkg/dto"
	"smartraw-backend/pkg/utils"
)

type UserController struct {
	userService  service.UserService
	orderService service.OrderService
}

func CreateUserController(e *echo.Group, userService service.UserService, orderService service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		userService:  userService,
		orderService: orderService,
	}

	e.POST("/register", c.Register)
	e.POST("/login", c.Login)
	e.GET("/products/all", c.GetProducts)
	e.GET("/profile", c.GetProfile, isLoggedIn)
	e.GET("/cart", c.GetCart, isLoggedIn)
	e.POST("/cart/add", c.AddToCart, isLoggedIn)
	e.PUT("/cart/update", c.UpdateCartItem, isLoggedIn)
	e.DELETE("/cart/:productId", c.RemoveCartItem, isLoggedIn)
	e.POST("/orders/place", c.PlaceOrder, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	respPayload, err := c.userService.Register(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "User registered successfully", respPayload)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.userService.Login(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) GetProducts(e echo.Context) error {
	filter := dto.CatalogFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	respPayload, err := c.userService.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) GetProfile(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	user, err := c.userService.GetProfile(e.Request().Context(), userID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", user)
}

func (c *UserController) GetCart(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	cart, err := c.userService.GetCart(e.Request().Context(), userID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", cart)
}

func (c *UserController) AddToCart(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	payload := dto.CartAddRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddToCart").Msg("")
	}

	cart, err := c.userService.AddToCart(e.Request().Context(), userID, payload.ProductID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Added to cart", cart)
}

func (c *UserController) UpdateCartItem(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	payload := dto.CartUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItem").Msg("")
	}

	cart, err := c.userService.UpdateCartItem(e.Request().Context(), userID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", cart)
}

func (c *UserController) RemoveCartItem(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	cart, err := c.userService.RemoveCartItem(e.Request().Context(), userID, e.Param("productId"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Removed from cart", cart)
}

func (c *UserController) PlaceOrder(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	respPayload, err := c.orderService.PlaceOrder(e.Request().Context(), userID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Order placed successfully", respPayload)
}

func (c *UserController) GetOrders(e echo.Context) error {
	userID, _ := utils.ExtractTokenAccount(e)

	orders, err := c.orderService.GetUserOrders(e.Request().Context(), userID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}
