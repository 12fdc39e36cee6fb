package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaglebank/ledger/internal/command"
	"github.com/eaglebank/ledger/internal/config"
	"github.com/eaglebank/ledger/internal/handler"
	"github.com/eaglebank/ledger/internal/query"
	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/events"
	"github.com/eaglebank/ledger/shared/logging"
	"github.com/eaglebank/ledger/shared/middleware"
	"github.com/eaglebank/ledger/shared/models"
	redisClient "github.com/eaglebank/ledger/shared/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: cfg.Log.Prefix,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it events are dropped and user reads are
	// served from memory only.
	var (
		publisher events.Publisher = events.NopPublisher{}
		userCache repository.UserViewCache
	)
	if cfg.Redis.Enabled() {
		redis, err := redisClient.NewClient(ctx, redisClient.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redis.Close()

		publisher = events.NewPublisher(redis.Client)
		userCache = redisClient.NewViewCache[models.UserView](redis.Client, "user:view:", cfg.Redis.UserCacheTTL)
		logger.Info("redis enabled", "addr", cfg.Redis.Addr)
	}

	ds := repository.NewDataStore()
	userRepo := repository.NewUserRepository(ds.Users, userCache)
	accountRepo := repository.NewAccountRepository(ds.Accounts)
	txRepo := repository.NewTransactionRepository(ds.Transactions)

	userHandler := handler.NewUserHandler(
		command.NewUserCommandService(userRepo, publisher, logger),
		query.NewUserQueryService(userRepo),
	)
	accountHandler := handler.NewAccountHandler(
		command.NewAccountCommandService(accountRepo, userRepo, publisher, logger),
		query.NewAccountQueryService(accountRepo, userRepo),
	)
	transactionHandler := handler.NewTransactionHandler(
		command.NewTransactionCommandService(accountRepo, txRepo, publisher, logger),
		query.NewTransactionQueryService(txRepo, accountRepo),
	)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggingMiddleware(logger))
	handler.Register(router, userHandler, accountHandler, transactionHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("ledger starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
