package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
)

var csvHeader = []string{"date", "category", "amount"}

// ExportCSV writes the month's expenses as date,category,amount rows in
// store order and returns the artifact path. A zero year or month means the
// current one.
func (e *Exporter) ExportCSV(ctx context.Context, userID int64, year int, month time.Month) (string, error) {
	year, month = core.ResolvePeriod(year, month)

	expenses, err := e.ledger.MonthExpenses(ctx, userID, year, month)
	if err != nil {
		return "", fmt.Errorf("list month expenses: %w", err)
	}

	path := e.artifactPath(userID, year, month, "csv")
	err = e.writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		for _, exp := range expenses {
			if err := cw.Write([]string{exp.Date.ISO(), exp.Category, exp.Amount.String()}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}

	slog.InfoContext(ctx, "CSV report written",
		"user_id", userID,
		"year", year,
		"month", int(month),
		"rows", len(expenses),
		"path", path)

	return path, nil
}
