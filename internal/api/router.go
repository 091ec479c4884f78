package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/venity/venity-gateway/docs"
	"github.com/venity/venity-gateway/internal/api/handler"
	"github.com/venity/venity-gateway/internal/api/middleware"
	"github.com/venity/venity-gateway/internal/core/ports"
	"github.com/venity/venity-gateway/internal/core/service"
	"github.com/venity/venity-gateway/internal/infrastructure/config"
	"github.com/venity/venity-gateway/internal/infrastructure/convex"
	redisdb "github.com/venity/venity-gateway/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the product cache is then disabled and every list hits the
// backend.
func NewRouter(cfg *config.Config, client *convex.Client, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("venity"))

	// --- Backend adapters ---
	userBackend := convex.NewUserBackend(client)
	productBackend := convex.NewProductBackend(client)
	orderBackend := convex.NewOrderBackend(client)
	vendorBackend := convex.NewVendorBackend(client)

	var productCache ports.ProductCache
	if rdb != nil {
		productCache = redisdb.NewProductCache(rdb, cfg.Redis.CacheTTL)
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userBackend, tokens, log)
	userService := service.NewUserService(userBackend, log)
	productService := service.NewProductService(productBackend, productCache, log)
	orderService := service.NewOrderService(orderBackend, log)
	vendorService := service.NewVendorService(vendorBackend, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, log)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(client, rdb)

	// --- Public routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	api := e.Group("/api", middleware.Auth(tokens))

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.PATCH("/users/:id", userHandler.Update)
	api.DELETE("/users/:id", userHandler.Delete)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/products", productHandler.Create)

	api.POST("/orders", orderHandler.Create)
	api.GET("/orders/:id", orderHandler.Get)

	api.GET("/vendors", vendorHandler.List)
	api.GET("/vendors/:id", vendorHandler.Get)
	api.POST("/vendors", vendorHandler.Create)

	return e
}
