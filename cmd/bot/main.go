package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AlexCode404/tg-fin-bot-1/internal/bot"
	"github.com/AlexCode404/tg-fin-bot-1/internal/config"
	"github.com/AlexCode404/tg-fin-bot-1/internal/export"
	"github.com/AlexCode404/tg-fin-bot-1/internal/log"
	"github.com/AlexCode404/tg-fin-bot-1/internal/services"
	"github.com/AlexCode404/tg-fin-bot-1/internal/storage"
)

func main() {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{Level: cfg.LogLevel, Component: log.ComponentApp})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open ledger store", log.FieldError, err, log.FieldPath, cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Registry seeding runs before anything can reference a category.
	if err := repo.SeedCategories(ctx, cfg.Categories); err != nil {
		logger.Error("Failed to seed categories", log.FieldError, err)
		os.Exit(1)
	}

	ledger := services.NewLedgerService(repo)
	exporter := export.NewExporter(ledger, cfg.ExportDir)

	b, err := bot.New(cfg.BotToken, ledger, exporter, logger.WithComponent(log.ComponentBot))
	if err != nil {
		logger.Error("Failed to initialize Telegram bot", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Starting expense bot",
		"db_path", cfg.SQLiteDBPath,
		"export_dir", cfg.ExportDir,
		"categories", len(cfg.Categories))

	if err := b.Run(ctx); err != nil {
		logger.Error("Bot stopped with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Bot stopped gracefully")
}
