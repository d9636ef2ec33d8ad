// @title        Hotelhub Account API
// @version      1.0
// @description  Account registration, login, password reset and hotel profiles.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hotelhub/account-service/internal/api"
	"github.com/hotelhub/account-service/internal/api/handler"
	"github.com/hotelhub/account-service/internal/core/service"
	"github.com/hotelhub/account-service/internal/infrastructure/db/mongo"
	"github.com/hotelhub/account-service/internal/infrastructure/db/redis"
	"github.com/hotelhub/account-service/internal/infrastructure/idgen"
	"github.com/hotelhub/account-service/internal/infrastructure/security"
	"github.com/hotelhub/account-service/internal/infrastructure/token"
	"github.com/hotelhub/account-service/internal/pkg/config"
	"github.com/hotelhub/account-service/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "account-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("account service stopped")
	}
}

// run wires the service and serves HTTP until ctx is cancelled or the server
// fails. Every connection it opens is closed before it returns.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Token.Secret == "" {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
	}

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	accounts := mongo.NewAccountRepository(db, log)
	hotels := mongo.NewHotelRepository(db, log)
	if err := mongo.EnsureIndexes(ctx, accounts, hotels); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// --- Credentials ---
	hasher, err := security.NewHasher(cfg.Security.PasswordHasher, cfg.Security.BcryptCost)
	if err != nil {
		return fmt.Errorf("password hasher: %w", err)
	}
	ids, err := idgen.New(cfg.Security.IDStrategy)
	if err != nil {
		return fmt.Errorf("id generator: %w", err)
	}
	tokens := token.NewJWTService(cfg.Token.Secret, cfg.Token.TTL, cfg.Token.RefreshWindow)

	// --- Use cases ---
	authService := service.NewAuthService(accounts, hasher, ids, tokens, log)
	hotelService := service.NewHotelService(hotels, ids, log)

	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Hotels:       hotelService,
		Tokens:       tokens,
		LoginLimiter: redis.NewLoginLimiter(rdb, cfg.Limiter.LoginLimit, cfg.Limiter.LoginWindow, log),
		HealthChecks: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return pingRedis(ctx, rdb) },
		},
		TrustedProxies: cfg.Limiter.TrustedProxies,
		Log:            log,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http server: %w", err)
		}
		cancel()
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}

func pingRedis(ctx context.Context, rdb *goredis.Client) error {
	return rdb.Ping(ctx).Err()
}
