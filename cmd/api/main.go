// Command api runs the Venity gateway: a stateless REST front for the
// managed backend deployment that owns all persistence.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/venity/venity-gateway/internal/api"
	"github.com/venity/venity-gateway/internal/infrastructure/config"
	"github.com/venity/venity-gateway/internal/infrastructure/convex"
	redisdb "github.com/venity/venity-gateway/internal/infrastructure/db/redis"
	"github.com/venity/venity-gateway/pkg/logger"
)

// @title           Venity API
// @version         1.0
// @description     REST gateway exposing users, products, orders and vendors on top of the Venity managed backend.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	if cfg.Convex.URL == "" {
		log.Fatal().Msg("CONVEX_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The cache is best-effort: a missing Redis only disables it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, product cache disabled")
		rdb = nil
	}

	client := convex.NewClient(convex.Config{URL: cfg.Convex.URL, Timeout: cfg.Convex.Timeout}, log)

	e := api.NewRouter(cfg, client, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gateway listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if rdb != nil {
		_ = rdb.Close()
	}
}
