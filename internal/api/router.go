package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/markethub/catalog-api/docs"
	"github.com/markethub/catalog-api/internal/api/handler"
	"github.com/markethub/catalog-api/internal/api/middleware"
	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/service"
	"github.com/markethub/catalog-api/internal/infrastructure/db/postgres"
	rediscache "github.com/markethub/catalog-api/internal/infrastructure/db/redis"
	"github.com/markethub/catalog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	itemCache := rediscache.NewItemCache(rdb, log)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	identity := service.NewIdentityService(tokens, userRepo)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, itemRepo, hasher, log)
	itemService := service.NewItemService(itemRepo, userRepo, itemCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)

	authRequired := middleware.Auth(identity)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- API routes ---
	v1 := e.Group("/api/v1")

	v1.POST("/auth/login", authHandler.LoginForm)
	v1.POST("/auth/login-json", authHandler.LoginJSON)
	v1.POST("/auth/logout", authHandler.Logout, authRequired)
	v1.POST("/auth/change-password", authHandler.ChangePassword, authRequired)

	v1.POST("/users", userHandler.Register)
	v1.GET("/users/me", userHandler.Me, authRequired)
	v1.GET("/users", userHandler.List, authRequired, adminOnly)
	v1.GET("/users/:id", userHandler.Get, authRequired)
	v1.PATCH("/users/:id", userHandler.Update, authRequired)
	v1.DELETE("/users/:id", userHandler.Delete, authRequired, adminOnly)

	v1.POST("/items", itemHandler.Create, authRequired)
	v1.GET("/items", itemHandler.List, authRequired)
	v1.GET("/items/my", itemHandler.ListMine, authRequired)
	v1.GET("/items/:id", itemHandler.Get, authRequired)
	v1.PATCH("/items/:id", itemHandler.Update, authRequired)
	v1.DELETE("/items/:id", itemHandler.Delete, authRequired)
	v1.POST("/items/:id/publish", itemHandler.Publish, authRequired)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
