package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
	"github.com/AlexCode404/tg-fin-bot-1/internal/services"
	"github.com/AlexCode404/tg-fin-bot-1/internal/storage"
)

func newTestExporter(t *testing.T) (*Exporter, *storage.SQLiteRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := storage.NewSQLiteRepository(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	if err := repo.SeedCategories(context.Background(), []string{"food", "transport", "other"}); err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	exportDir := filepath.Join(dir, "exports")
	return NewExporter(services.NewLedgerService(repo), exportDir), repo, exportDir
}

func TestExportCSVRoundTrip(t *testing.T) {
	exporter, repo, _ := newTestExporter(t)
	ctx := context.Background()

	want := map[[3]string]bool{
		{"2023-05-03", "food", "100.00"}:     true,
		{"2023-05-10", "transport", "50.00"}: true,
		{"2023-05-21", "food", "12.34"}:      true,
	}
	inserts := []struct {
		day      int
		category string
		cents    int64
	}{
		{3, "food", 10000},
		{10, "transport", 5000},
		{21, "food", 1234},
	}
	for _, in := range inserts {
		if _, err := repo.InsertExpense(ctx, 42, core.Money{Cents: in.cents}, in.category, core.NewDate(2023, time.May, in.day)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	path, err := exporter.ExportCSV(ctx, 42, 2023, time.May)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse artifact: %v", err)
	}
	if len(records) != len(inserts)+1 {
		t.Fatalf("got %d records, want header plus %d rows", len(records), len(inserts))
	}
	if strings.Join(records[0], ",") != "date,category,amount" {
		t.Errorf("header = %v", records[0])
	}
	for _, rec := range records[1:] {
		key := [3]string{rec[0], rec[1], rec[2]}
		if !want[key] {
			t.Errorf("unexpected row %v", rec)
		}
		delete(want, key)
	}
	if len(want) != 0 {
		t.Errorf("missing rows: %v", want)
	}
}

func TestExportCSVEmptyMonth(t *testing.T) {
	exporter, _, _ := newTestExporter(t)

	path, err := exporter.ExportCSV(context.Background(), 42, 2019, time.January)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if strings.TrimSpace(string(data)) != "date,category,amount" {
		t.Errorf("empty month artifact = %q, want header only", string(data))
	}
}

func TestExportCSVUniquePaths(t *testing.T) {
	exporter, _, _ := newTestExporter(t)
	ctx := context.Background()

	first, err := exporter.ExportCSV(ctx, 42, 2023, time.May)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := exporter.ExportCSV(ctx, 42, 2023, time.May)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if first == second {
		t.Errorf("identical export paths: %s", first)
	}
}

func TestExportLeavesNoTempFiles(t *testing.T) {
	exporter, _, exportDir := newTestExporter(t)

	if _, err := exporter.ExportCSV(context.Background(), 42, 2023, time.May); err != nil {
		t.Fatalf("export: %v", err)
	}

	entries, err := os.ReadDir(exportDir)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", entry.Name())
		}
	}
}
