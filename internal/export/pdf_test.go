package export

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
)

func TestExportPDF(t *testing.T) {
	exporter, repo, exportDir := newTestExporter(t)
	ctx := context.Background()

	if _, err := repo.InsertExpense(ctx, 42, core.Money{Cents: 10000}, "food", core.NewDate(2023, time.May, 3)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := repo.InsertExpense(ctx, 42, core.Money{Cents: 5000}, "transport", core.NewDate(2023, time.May, 10)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	path, err := exporter.ExportPDF(ctx, 42, 2023, time.May)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("artifact does not start with %%PDF header")
	}

	// The intermediate chart PNG must be gone once the document exists.
	entries, err := os.ReadDir(exportDir)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "chart-") {
			t.Errorf("leftover chart artifact %s", entry.Name())
		}
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", entry.Name())
		}
	}
}

func TestExportPDFEmptyMonth(t *testing.T) {
	exporter, _, exportDir := newTestExporter(t)

	// No expenses: the document must still come out, with no chart drawn.
	path, err := exporter.ExportPDF(context.Background(), 42, 2019, time.January)
	if err != nil {
		t.Fatalf("empty month export must not fail: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("artifact does not start with %%PDF header")
	}

	entries, err := os.ReadDir(exportDir)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "chart-") {
			t.Errorf("chart artifact created for empty month: %s", entry.Name())
		}
	}
}

func TestExportPDFUniquePaths(t *testing.T) {
	exporter, _, _ := newTestExporter(t)
	ctx := context.Background()

	first, err := exporter.ExportPDF(ctx, 42, 2023, time.May)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := exporter.ExportPDF(ctx, 42, 2023, time.May)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if first == second {
		t.Errorf("identical export paths: %s", first)
	}
}
