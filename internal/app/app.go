package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"

	"smartraw-backend/config"
	"smartraw-backend/internal/controller"
	circuitbreaker "smartraw-backend/internal/infrastructure/circuit-breaker"
	"smartraw-backend/internal/infrastructure/message-queue/kafka"
	"smartraw-backend/internal/infrastructure/tracing"
	"smartraw-backend/internal/middleware"
	"smartraw-backend/internal/repository"
	"smartraw-backend/internal/service"
	"smartraw-backend/pkg/dto"
)

type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Server    *echo.Echo
	scheduler gocron.Scheduler
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("smartraw-backend")
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(echomiddleware.CORS())
	e.Use(middleware.Logger)
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	kafkaProducer := kafka.CreateKafkaProducer(app.Config)
	emailBreaker := circuitbreaker.CreateCircuitBreaker("smtp")

	sellerRepo := repository.CreateNewSellerRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	adminRepo := repository.CreateNewAdminRepository(app.DB)

	sellerService := service.CreateSellerService(sellerRepo, productRepo, orderRepo, *app.Config)
	userService := service.CreateUserService(userRepo, productRepo, *app.Config)
	orderService := service.CreateOrderService(orderRepo, userRepo, productRepo, kafkaProducer, emailBreaker, *app.Config)
	adminService := service.CreateAdminService(adminRepo, sellerRepo, orderRepo, *app.Config)

	sellerGroup := e.Group("/seller")
	userGroup := e.Group("/user")
	adminGroup := e.Group("/admin")

	controller.CreateSellerController(sellerGroup, sellerService, orderService, jwtGuard(app.Config.JWTConfig.SellerSecret))
	controller.CreateUserController(userGroup, userService, orderService, jwtGuard(app.Config.JWTConfig.UserSecret))
	controller.CreateAdminController(adminGroup, adminService, jwtGuard(app.Config.JWTConfig.AdminSecret))

	e.GET("/ping", func(c echo.Context) error {
		return dto.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	app.startLowStockSweep(productRepo, kafkaProducer)

	app.Server = e
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

// jwtGuard builds the guard for one actor namespace. Each namespace has its
// own signing key, so a seller token never passes a user or admin route.
func jwtGuard(secret string) echo.MiddlewareFunc {
	return echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey: []byte(secret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})
}

func (app *App) startLowStockSweep(productRepo repository.ProductRepository, kafkaProducer *kafkago.Conn) {
	monitor := service.CreateStockMonitor(productRepo, kafkaProducer)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create scheduler")
		return
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(app.Config.LowStockSweepMinutes)*time.Minute),
		gocron.NewTask(func() {
			if err := monitor.SweepLowStock(context.Background()); err != nil {
				log.Error().Err(err).Str("component", "SweepLowStock").Msg("")
			}
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to schedule low stock sweep")
		return
	}

	scheduler.Start()
	app.scheduler = scheduler
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}

	return app.Server.Shutdown(ctx)
}
