package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fleet-dispatch/config"
	chatDelivery "fleet-dispatch/internal/dispatch/delivery/http"
	dispatchUC "fleet-dispatch/internal/dispatch/usecase"
	fleetDelivery "fleet-dispatch/internal/fleet/delivery/http"
	"fleet-dispatch/internal/fleet/repository/sqlite"
	"fleet-dispatch/internal/httpserver"
	"fleet-dispatch/internal/middleware"
	"fleet-dispatch/internal/router"
	"fleet-dispatch/internal/session"
	"fleet-dispatch/pkg/log"
)

// @title       Fleet Dispatch API
// @description Conversational fleet dispatcher: chat-driven vehicle, driver, and trip management over SQLite.
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
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Fleet Dispatch...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Fleet storage
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if cfg.Database.Seed {
		if err := sqlite.Seed(db); err != nil {
			logger.Error(ctx, "Failed to seed database: ", err)
			return
		}
		logger.Info(ctx, "Database seeded")
	}

	fleetRepo := sqlite.New(db, logger)

	// 4. Dispatch domain
	intentRouter := router.New(fleetRepo, logger)
	uc := dispatchUC.New(logger, fleetRepo, intentRouter)
	sessions := session.New(cfg.Session.Capacity, cfg.Session.TTL)

	chatHandler := chatDelivery.New(logger, uc, sessions)
	fleetHandler := fleetDelivery.New(logger, fleetRepo)
	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ChatHandler:  chatHandler,
		FleetHandler: fleetHandler,
		Middleware:   mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
