package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cinelog/review-server-go/internal/auth"
	"github.com/cinelog/review-server-go/internal/config"
	"github.com/cinelog/review-server-go/internal/database"
	"github.com/cinelog/review-server-go/internal/handler"
	"github.com/cinelog/review-server-go/internal/middleware"
	"github.com/cinelog/review-server-go/internal/redis"
	"github.com/cinelog/review-server-go/internal/repository"
	"github.com/cinelog/review-server-go/internal/router"
	"github.com/cinelog/review-server-go/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("redis connected")
	} else {
		log.Warn().Msg("REDIS_URL is unset: login rate limiting disabled")
	}

	userRepo := repository.NewUserRepository(db.DB)
	movieRepo := repository.NewMovieRepository(db.DB)
	reviewRepo := repository.NewReviewRepository(db.DB)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.LoginTokenTTL(), cfg.SignupTokenTTL())

	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, hasher)
	reviewService := service.NewReviewService(reviewRepo, userRepo, movieRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	var loginLimiter *middleware.LoginRateLimitMiddleware
	if redisClient != nil {
		loginLimiter = middleware.NewLoginRateLimitMiddleware(redisClient.Client, cfg.LoginRateLimitPerMin)
	} else {
		loginLimiter = middleware.NewLoginRateLimitMiddleware(nil, 0)
	}

	r := router.New(router.Deps{
		Auth:         handler.NewAuthHandler(authService),
		Users:        handler.NewUserHandler(authService, userService),
		Reviews:      handler.NewReviewHandler(reviewService),
		AuthMW:       authMiddleware,
		LoginLimiter: loginLimiter,
	})

	server := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     r,
		ReadTimeout: config.ServerReadTimeout,
		IdleTimeout: config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
