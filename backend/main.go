package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizbank/backend/config"
	"quizbank/backend/middleware"
	"quizbank/backend/routes"
	"quizbank/backend/storage"
	"quizbank/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InitLogger().Error("error loading config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat, Level: cfg.LogLevel})

	// Initialize database
	store, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Error("error opening store", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.Init(ctx, cfg.SeedOnStart); err != nil {
		logger.Error("error initializing store", "error", err)
		return
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, cfg, logger)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("server starting", "port", cfg.ServerPort, "driver", cfg.DBDriver)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
