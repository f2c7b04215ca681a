package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
	"github.com/AlexCode404/tg-fin-bot-1/internal/storage"
)

// LedgerService is the aggregation engine over the expense store. The
// repository (registry + store) is injected at construction; the service
// holds no other state.
type LedgerService struct {
	repo *storage.SQLiteRepository
}

func NewLedgerService(repo *storage.SQLiteRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// AddExpense validates and persists one expense dated today. The amount must
// be strictly positive and the category must be in the registry; otherwise
// core.ErrInvalidAmount or core.ErrCategoryNotFound comes back and nothing
// is written.
func (s *LedgerService) AddExpense(ctx context.Context, userID int64, amount core.Money, category string) (int64, error) {
	if err := amount.Validate(); err != nil {
		return 0, err
	}
	category = core.NormalizeCategory(category)
	if category == "" {
		return 0, core.ErrCategoryNotFound
	}

	id, err := s.repo.InsertExpense(ctx, userID, amount, category, core.Today())
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Categories returns the registry names in seeding order.
func (s *LedgerService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// Summarize groups the user's month by category. A zero year or month means
// the current one. Category order is the first-encountered order of the
// month query; the grand total comes from an independent SQL sum and must
// equal the per-category sums exactly. An empty month yields an empty
// mapping and a zero total, not an error.
func (s *LedgerService) Summarize(ctx context.Context, userID int64, year int, month time.Month) (core.Summary, error) {
	year, month = core.ResolvePeriod(year, month)

	expenses, err := s.repo.ListMonthExpenses(ctx, userID, year, month)
	if err != nil {
		return core.Summary{}, fmt.Errorf("summarize month: %w", err)
	}

	index := make(map[string]int, len(expenses))
	var categories []core.CategoryAmount
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(categories)
			index[e.Category] = i
			categories = append(categories, core.CategoryAmount{Name: e.Category})
		}
		categories[i].Amount = categories[i].Amount.Add(e.Amount)
	}

	total, err := s.repo.MonthTotal(ctx, userID, year, month)
	if err != nil {
		return core.Summary{}, fmt.Errorf("summarize total: %w", err)
	}

	slog.DebugContext(ctx, "Month summarized",
		"user_id", userID,
		"year", year,
		"month", int(month),
		"categories", len(categories),
		"total_cents", total.Cents)

	return core.Summary{
		Year:       year,
		Month:      month,
		Total:      total,
		Categories: categories,
	}, nil
}

// MonthExpenses lists the user's month in store order, with the same
// zero-means-current period resolution as Summarize.
func (s *LedgerService) MonthExpenses(ctx context.Context, userID int64, year int, month time.Month) ([]core.Expense, error) {
	year, month = core.ResolvePeriod(year, month)
	return s.repo.ListMonthExpenses(ctx, userID, year, month)
}
