package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cityhall/email-gateway/internal/api"
	"github.com/cityhall/email-gateway/internal/infrastructure/config"
	"github.com/cityhall/email-gateway/internal/infrastructure/db/postgres"
	redisdb "github.com/cityhall/email-gateway/internal/infrastructure/db/redis"
	"github.com/cityhall/email-gateway/internal/infrastructure/mail"
	"github.com/cityhall/email-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development convenience; the file is optional.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Two deliberately separate stores: identity and audit never share a
	// pool, so an outage in one cannot roll back or block the other.
	identityPool, err := postgres.Connect(ctx, cfg.IdentityDB.URL, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("identity store connection failed")
	}
	defer identityPool.Close()

	auditPool, err := postgres.Connect(ctx, cfg.AuditDB.URL, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("audit store connection failed")
	}
	defer auditPool.Close()

	if err := postgres.MigrateIdentity(cfg.IdentityDB.URL); err != nil {
		log.Fatal().Err(err).Msg("identity store migration failed")
	}
	if err := postgres.MigrateAudit(cfg.AuditDB.URL); err != nil {
		log.Fatal().Err(err).Msg("audit store migration failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mailer := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass)

	e := api.NewRouter(identityPool, auditPool, rdb, mailer, cfg.JWTSecret, cfg.Env == "development", log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Bool("email_configured", mailer.Configured()).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
