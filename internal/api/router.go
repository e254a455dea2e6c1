package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cityhall/email-gateway/internal/api/handler"
	"github.com/cityhall/email-gateway/internal/api/middleware"
	"github.com/cityhall/email-gateway/internal/core/domain"
	"github.com/cityhall/email-gateway/internal/core/ports"
	"github.com/cityhall/email-gateway/internal/core/service"
	"github.com/cityhall/email-gateway/internal/infrastructure/db/postgres"
	rediscache "github.com/cityhall/email-gateway/internal/infrastructure/db/redis"
	healthhandlers "github.com/cityhall/email-gateway/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// identityPool and auditPool are deliberately separate: the identity store and
// the audit store never share a connection pool or a transaction.
func NewRouter(identityPool, auditPool *pgxpool.Pool, rdb *redis.Client, mailer ports.Mailer, jwtSecret string, dev bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, dev)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("mailgw"))

	// --- Dependencies ---
	identityRepo := postgres.NewIdentityRepository(identityPool)
	auditRepo := postgres.NewAuditRepository(auditPool)
	logCache := rediscache.NewLogCache(rdb)

	tokenService := service.NewTokenService(jwtSecret, 0)
	authService := service.NewAuthService(identityRepo, tokenService)
	emailService := service.NewEmailService(mailer, auditRepo, logCache, log)
	auditService := service.NewAuditService(auditRepo, logCache, log)

	authHandler := handler.NewAuthHandler(authService)
	emailHandler := handler.NewEmailHandler(emailService, auditService)
	statusHandler := handler.NewStatusHandler(mailer)

	authn := middleware.Auth(tokenService)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/api/status", statusHandler.Status)

	// --- Protected routes: authentication, then per-route role gate ---
	e.POST("/api/send-email", emailHandler.Send, authn, middleware.RBAC(domain.AuthorizedSenderRoles...))
	e.GET("/api/email-logs", emailHandler.Logs, authn, middleware.RBAC(domain.AuditReaderRoles...))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(identityPool, auditPool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
