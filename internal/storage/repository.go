// Package storage is the durable side of the ledger: a SQLite-backed
// category registry and expense store. The registry is seeded once at
// startup and read-only afterwards; expenses are insert-only.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SeedCategories inserts any missing category names. Idempotent: existing
// names are left untouched, so running it on every startup is safe.
func (r *SQLiteRepository) SeedCategories(ctx context.Context, names []string) error {
	for _, name := range names {
		name = core.NormalizeCategory(name)
		if name == "" {
			continue
		}
		if err := r.queries.SeedCategory(ctx, name); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

// CategoryExists reports whether name is in the registry.
func (r *SQLiteRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	exists, err := r.queries.CategoryExists(ctx, core.NormalizeCategory(name))
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}

// ListCategories returns all registry names in seeding order.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]string, error) {
	names, err := r.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return names, nil
}

// InsertExpense persists one expense. The category must already be in the
// registry; otherwise core.ErrCategoryNotFound is returned and nothing is
// written.
func (r *SQLiteRepository) InsertExpense(ctx context.Context, userID int64, amount core.Money, category string, spentOn core.Date) (int64, error) {
	id, inserted, err := r.queries.InsertExpense(ctx, InsertExpenseParams{
		UserID:      userID,
		AmountCents: amount.Cents,
		SpentOn:     spentOn.ISO(),
		Category:    core.NormalizeCategory(category),
	})
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	if !inserted {
		return 0, core.ErrCategoryNotFound
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"user_id", userID,
		"amount_cents", amount.Cents,
		"category", core.NormalizeCategory(category),
		"spent_on", spentOn.ISO())

	return id, nil
}

// ListMonthExpenses returns all of the user's expenses within the calendar
// month, category names resolved, in insertion order. An empty month yields
// an empty slice, not an error.
func (r *SQLiteRepository) ListMonthExpenses(ctx context.Context, userID int64, year int, month time.Month) ([]core.Expense, error) {
	from, to := monthRange(year, month)
	rows, err := r.queries.ListMonthExpenses(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list month expenses: %w", err)
	}

	expenses := make([]core.Expense, len(rows))
	for i, row := range rows {
		spentOn, err := time.Parse("2006-01-02", row.SpentOn)
		if err != nil {
			return nil, fmt.Errorf("parse spent_on %q: %w", row.SpentOn, err)
		}
		expenses[i] = core.Expense{
			ID:       row.ID,
			UserID:   row.UserID,
			Amount:   core.Money{Cents: row.AmountCents},
			Category: row.Category,
			Date:     core.Date{Time: spentOn.UTC()},
		}
	}
	return expenses, nil
}

// MonthTotal sums the user's expenses for the calendar month in SQL,
// independently of any per-category grouping.
func (r *SQLiteRepository) MonthTotal(ctx context.Context, userID int64, year int, month time.Month) (core.Money, error) {
	from, to := monthRange(year, month)
	total, err := r.queries.MonthTotal(ctx, userID, from, to)
	if err != nil {
		return core.Money{}, fmt.Errorf("month total: %w", err)
	}
	return core.Money{Cents: total}, nil
}

// monthRange returns the half-open [first day, first day of next month) ISO
// date bounds for a calendar month.
func monthRange(year int, month time.Month) (string, string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start.Format("2006-01-02"), start.AddDate(0, 1, 0).Format("2006-01-02")
}
