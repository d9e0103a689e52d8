package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayoon-choi/todolist/internal/config"
	"github.com/dayoon-choi/todolist/internal/database"
	todohttp "github.com/dayoon-choi/todolist/internal/http"
	"github.com/dayoon-choi/todolist/internal/http/handler"
	"github.com/dayoon-choi/todolist/internal/metrics"
	"github.com/dayoon-choi/todolist/internal/middleware"
	"github.com/dayoon-choi/todolist/internal/repository"
	"github.com/dayoon-choi/todolist/internal/service"
	"github.com/dayoon-choi/todolist/internal/token"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"port", cfg.ServerPort,
		"log_level", cfg.LogLevel,
		"token_ttl", cfg.TokenTTL.String(),
		"cors_origin", cfg.CORSAllowedOrigin,
	)

	// Database connection and schema
	db, err := database.Open(cfg.DB.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}
	logger.Info("database connected")

	if err := database.RunMigrations(cfg.DB.DSN()); err != nil {
		return err
	}
	logger.Info("migrations applied")

	// Repositories
	userRepo := repository.NewPostgresUser(db)
	todoRepo := repository.NewPostgresTodo(db)

	// Token manager and services
	tokens := token.NewManager(cfg.TokenSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	todoSvc := service.NewTodoService(todoRepo)

	// HTTP layer
	auth := middleware.NewAuth(tokens)
	collector := metrics.NewCollector()
	router := todohttp.NewRouter(
		handler.NewAuthHandler(authSvc),
		handler.NewTodoHandler(todoSvc),
		auth,
		collector,
	)
	srv := todohttp.NewServer(cfg.ServerPort, logger, router, cfg.CORSAllowedOrigin)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
