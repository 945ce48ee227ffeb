package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pizzeria/pizzeria-api/internal/api/handler"
	"github.com/pizzeria/pizzeria-api/internal/api/middleware"
	"github.com/pizzeria/pizzeria-api/internal/core/service"
	"github.com/pizzeria/pizzeria-api/internal/infrastructure/config"
	mongodb "github.com/pizzeria/pizzeria-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pizzeria/pizzeria-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/pizzeria/pizzeria-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pizzeria"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	pizzaRepo := mongodb.NewPizzaRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	menuCache := redisdb.NewMenuCache(rdb, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	pizzaService := service.NewPizzaService(pizzaRepo, menuCache, log)
	orderService := service.NewOrderService(orderRepo, pizzaRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokenService)
	pizzaHandler := handler.NewPizzaHandler(pizzaService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Identity resolution runs on every request and never rejects;
	// per-operation guards decide authorization downstream.
	e.Use(middleware.Identity(tokenService, userRepo, log))

	// --- API routes (cookie path is scoped to /api) ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/logout", authHandler.Logout)
	apiGroup.GET("/auth/me", authHandler.Me)

	apiGroup.GET("/pizzas", pizzaHandler.List)
	apiGroup.POST("/pizzas", pizzaHandler.Create)
	apiGroup.PUT("/pizzas/:id", pizzaHandler.Update)
	apiGroup.DELETE("/pizzas/:id", pizzaHandler.Delete)

	apiGroup.POST("/orders", orderHandler.Place)
	apiGroup.GET("/orders/my-orders", orderHandler.MyOrders)

	// --- Operational endpoints (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
