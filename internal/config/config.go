package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCategories is the seeded category set. Override with the
// CATEGORIES environment variable (comma separated).
var DefaultCategories = []string{
	"food", "transport", "entertainment", "utilities", "rent",
	"healthcare", "education", "shopping", "travel", "other",
}

type Config struct {
	// Telegram
	BotToken string

	// Database
	SQLiteDBPath string

	// Report artifacts
	ExportDir string

	// Category registry seed list, lower-cased
	Categories []string

	// Logging
	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		BotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/expenses.db"),
		ExportDir:    getEnv("EXPORT_DIR", "./exports"),
		Categories:   parseCategories(os.Getenv("CATEGORIES")),
		LogLevel:     parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.BotToken == "" {
		errors = append(errors, "TELEGRAM_BOT_TOKEN must be set")
	}

	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else if err := ensureDir(filepath.Dir(c.SQLiteDBPath)); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create SQLite database directory: %v", err))
	}

	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	} else if err := ensureDir(c.ExportDir); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create export directory '%s': %v", c.ExportDir, err))
	}

	if len(c.Categories) == 0 {
		errors = append(errors, "category list cannot be empty")
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, name := range c.Categories {
		if seen[name] {
			errors = append(errors, fmt.Sprintf("duplicate category '%s'", name))
		}
		seen[name] = true
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func ensureDir(dir string) error {
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func parseCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), DefaultCategories...)
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
