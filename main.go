package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qa-mentor/config"
	"qa-mentor/knowledge"
	"qa-mentor/oracle"
	"qa-mentor/search"
	"qa-mentor/security"
	"qa-mentor/session"
	"qa-mentor/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Environment first: config reads env vars through viper
	_ = godotenv.Load()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	index, err := knowledge.DefaultIndex()
	if err != nil {
		logger.Fatal("Failed to build knowledge index", zap.Error(err))
	}
	logger.Info("Knowledge index ready",
		zap.Int("topics", index.TopicCount()),
		zap.Int("entries", len(index.Entries())))

	oracleClient := oracle.New(cfg, logger)
	if !oracleClient.Enabled() {
		logger.Warn("Oracle host not configured, running on curated answers only")
	}

	scorer := search.NewScorer(search.NewExpander(knowledge.Synonyms), cfg.UseSynonyms)
	pipeline := search.NewPipeline(cfg, index, scorer, oracleClient, logger)

	machine := session.NewMachine(index)
	store := session.NewStore(machine)
	filter := security.NewFilter(cfg, logger)

	webServer := web.NewServer(cfg, index, pipeline, store, machine, filter, logger)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting QA mentor web server", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
