package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lionhard83/sample-server-tests/internal/config"
	"github.com/lionhard83/sample-server-tests/internal/handler"
	"github.com/lionhard83/sample-server-tests/internal/repository"
	"github.com/lionhard83/sample-server-tests/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	var accountRepo repository.AccountRepository
	var productRepo repository.ProductRepository

	if cfg.DatabaseDSN != "" {
		db, err := repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		accountRepo = repository.NewMySQLAccountRepository(db)
		productRepo = repository.NewMySQLProductRepository(db)
		slog.Info("using mysql store")
	} else {
		accountRepo = repository.NewMemoryAccountRepository()
		productRepo = repository.NewMemoryProductRepository()
		slog.Info("using in-memory store")
	}

	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost)
	authHandler := handler.NewAuthHandler(authService)

	productService := service.NewProductService(productRepo)
	productHandler := handler.NewProductHandler(productService)

	r := handler.Routes(authHandler, productHandler, authService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
