package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/router"
	"github.com/playmakerhq/playmaker/backend/pkg/config"
	"github.com/playmakerhq/playmaker/backend/pkg/logger"
	"github.com/playmakerhq/playmaker/backend/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	dispatcher, err := router.SetupRoutes(e, db.Postgres, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to set up routes", zap.Error(err))
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			zlog.Info("server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal, then drain in-flight fan-out before exit.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	dispatcher.Close()
}
