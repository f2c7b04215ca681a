// Package export renders monthly reports into durable artifacts: a CSV table
// and a multi-section PDF document. Every artifact is written next to its
// final path and renamed into place, so a returned path is always a
// complete, closed file. Paths carry a per-invocation discriminator so
// concurrent exports for the same month never clobber each other.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
)

// Ledger is the slice of the ledger service the renderer needs.
type Ledger interface {
	MonthExpenses(ctx context.Context, userID int64, year int, month time.Month) ([]core.Expense, error)
	Summarize(ctx context.Context, userID int64, year int, month time.Month) (core.Summary, error)
}

type Exporter struct {
	ledger Ledger
	dir    string
}

func NewExporter(ledger Ledger, dir string) *Exporter {
	return &Exporter{ledger: ledger, dir: dir}
}

// artifactPath builds a collision-free output path for one invocation.
func (e *Exporter) artifactPath(userID int64, year int, month time.Month, ext string) string {
	tag := uuid.NewString()[:8]
	name := fmt.Sprintf("expenses_%d_%d_%02d_%s.%s", userID, year, int(month), tag, ext)
	return filepath.Join(e.dir, name)
}

// writeAtomic streams render into a temp file in the target directory and
// renames it onto path. On any failure the temp file is removed and path is
// never created.
func (e *Exporter) writeAtomic(path string, render func(io.Writer) error) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	defer tmp.Close()

	if err := render(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("finalize artifact: %w", err)
	}
	return nil
}
