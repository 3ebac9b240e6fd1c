package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/request-management/request-system/internal/api/handler"
	"github.com/request-management/request-system/internal/api/middleware"
	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/mapper"
	"github.com/request-management/request-system/internal/core/service"
	mongorepo "github.com/request-management/request-system/internal/infrastructure/db/mongo"
	redisstore "github.com/request-management/request-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. Role checks
// live on the routes; ownership checks live in the services.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	accountRepo := mongorepo.NewAccountRepository(db)
	requestRepo := mongorepo.NewRequestRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)
	idempotency := redisstore.NewIdempotencyStore(rdb)

	hasher := service.NewBcryptHasher()
	tokens := service.NewTokenService(jwtSecret, tokenTTL)

	accountService := service.NewAccountService(accountRepo, mapper.NewAccountMapper(), hasher, log)
	requestService := service.NewRequestService(requestRepo, mapper.NewRequestMapper(), auditRepo, log)
	authService := service.NewAuthService(accountRepo, accountService, mapper.NewAccountMapper(), hasher, tokens, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	requestHandler := handler.NewRequestHandler(requestService, idempotency, log)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authenticated := middleware.Auth(tokens)

	// --- Auth routes (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/sign-up", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Health probes and operational surfaces (public) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Accounts ---
	accounts := e.Group("/v1/accounts", authenticated)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleAuthor, domain.RoleReviewer)

	accounts.GET("", accountHandler.List, anyRole)
	accounts.GET("/:id", accountHandler.GetByID, anyRole)
	accounts.POST("", accountHandler.Create, middleware.RBAC(domain.RoleAdmin))
	accounts.PUT("/:id", accountHandler.Update, anyRole)    // self-or-admin enforced in the service
	accounts.DELETE("/:id", accountHandler.Delete, anyRole) // self-or-admin enforced in the service

	// --- Requests ---
	requests := e.Group("/v1/requests", authenticated)
	adminOrReviewer := middleware.RBAC(domain.RoleAdmin, domain.RoleReviewer)
	adminOrAuthor := middleware.RBAC(domain.RoleAdmin, domain.RoleAuthor)

	requests.GET("", requestHandler.List, adminOrReviewer)
	requests.GET("/my-requests", requestHandler.MyRequests, adminOrAuthor)
	requests.GET("/:id", requestHandler.GetByID, adminOrReviewer)
	requests.POST("", requestHandler.Create, adminOrAuthor)
	requests.PUT("/:id", requestHandler.Update, adminOrAuthor)
	requests.DELETE("/:id", requestHandler.Delete, adminOrAuthor)
	requests.PUT("/approve/:id", requestHandler.Approve, adminOrReviewer)
	requests.PUT("/disapprove/:id", requestHandler.Disapprove, adminOrReviewer)

	return e
}
