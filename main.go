package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"todoapi/internal/config"
	"todoapi/internal/repository"
	"todoapi/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on the environment")
	}

	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Database connection
	client, db, err := repository.NewMongoDB(ctx, cfg.Database.URI, cfg.Database.Name, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := repository.EnsureIndexes(ctx, db, logger); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	// HTTP-layer logger
	httpLog := logrus.New()

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger, httpLog)
	if err := srv.Run(ctx, cfg.Server.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}

	logger.Info("Application stopped.")
}
