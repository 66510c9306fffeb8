package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/luthfiarifin/elda-backend/config"
	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/internal/httpserver"
	"github.com/luthfiarifin/elda-backend/internal/model"
	"github.com/luthfiarifin/elda-backend/pkg/gemini"
	"github.com/luthfiarifin/elda-backend/pkg/log"
	"github.com/luthfiarifin/elda-backend/pkg/mongodb"
)

// @title       Elda Backend API
// @description Speech-intent backend: classifies transcribed speech with Gemini and manages contacts and tasks in MongoDB.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration — missing MONGODB_URI or GEMINI_API_KEY is fatal.
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting elda-backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB — connected once at startup; unreachable store is fatal.
	mongoClient, err := mongodb.Connect(ctx, cfg.MongoDB.URI)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), mongoClient); err != nil {
			logger.Errorf(ctx, "Failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDB.Database)
	logger.Infof(ctx, "MongoDB connected, database: %s", cfg.MongoDB.Database)

	// 4. Gemini classifier
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	intentClassifier := classifier.New(geminiClient, logger)
	logger.Infof(ctx, "Intent classifier initialized, model: %s", geminiClient.Model())

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     model.Environment(cfg.Environment.Name),
		MongoDB:         db,
		Classifier:      intentClassifier,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
