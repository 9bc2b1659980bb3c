package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"memo-manager/config"
	_ "memo-manager/docs" // Swagger docs
	"memo-manager/internal/app"
	"memo-manager/internal/httpserver"
)

// @title       Memo Manager
// @description Memo page backed by a remote memo API, with a local fallback store when the API is unreachable.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Memo Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Remote API: %s", cfg.Remote.BaseURL)
	logger.Infof(ctx, "Fallback: %s at %s", cfg.Fallback.Driver, cfg.Fallback.Path)

	// 3. Repositories
	deps, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open fallback storage: ", err)
		return
	}
	defer deps.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Gatherer:       deps.Registry,
		Remote:         deps.Remote,
		Fallback:       deps.Fallback,
		SessionSize:    cfg.Session.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
