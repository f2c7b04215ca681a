package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
)

// ExportPDF renders the month into a paginated document: a title, the
// per-category summary with the grand total, a pie chart of shares, and a
// second page with the detail table. The chart is rendered to a transient
// PNG that is removed once the document is finalized, success or not; for an
// empty month the chart step is skipped entirely and the document still
// carries its title and an empty detail table.
func (e *Exporter) ExportPDF(ctx context.Context, userID int64, year int, month time.Month) (string, error) {
	year, month = core.ResolvePeriod(year, month)

	expenses, err := e.ledger.MonthExpenses(ctx, userID, year, month)
	if err != nil {
		return "", fmt.Errorf("list month expenses: %w", err)
	}
	summary, err := e.ledger.Summarize(ctx, userID, year, month)
	if err != nil {
		return "", fmt.Errorf("summarize month: %w", err)
	}

	var chartPath string
	if summary.HasExpenses() {
		chartPath, err = e.renderChart(summary)
		if err != nil {
			return "", fmt.Errorf("render chart: %w", err)
		}
		defer os.Remove(chartPath)
	}

	path := e.artifactPath(userID, year, month, "pdf")
	err = e.writeAtomic(path, func(w io.Writer) error {
		return renderDocument(w, summary, expenses, chartPath)
	})
	if err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	slog.InfoContext(ctx, "PDF report written",
		"user_id", userID,
		"year", year,
		"month", int(month),
		"rows", len(expenses),
		"path", path)

	return path, nil
}

// renderChart draws the category shares as a pie chart PNG and returns the
// temp file path. The caller owns removal.
func (e *Exporter) renderChart(s core.Summary) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	values := make([]chart.Value, len(s.Categories))
	for i, ca := range s.Categories {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", ca.Name, s.Share(ca.Amount)),
			Value: ca.Amount.Float(),
		}
	}
	pie := chart.PieChart{
		Width:  600,
		Height: 400,
		Values: values,
	}

	f, err := os.CreateTemp(e.dir, "chart-*.png")
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	if err := pie.Render(chart.PNG, f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func renderDocument(w io.Writer, s core.Summary, expenses []core.Expense, chartPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Expense report for %s %d", s.MonthName(), s.Year), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// Per-category summary and grand total
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Totals by category:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for _, ca := range s.Categories {
		pdf.CellFormat(100, 7, ca.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, ca.Amount.String(), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(100, 8, "Grand total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, s.Total.String(), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Chart, only when the month had expenses
	if chartPath != "" {
		pdf.ImageOptions(chartPath, 15, pdf.GetY(), 180, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	// Detail table on its own page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Expense detail:", "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(50, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Amount", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, exp := range expenses {
		pdf.CellFormat(50, 8, exp.Date.ISO(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, exp.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, exp.Amount.String(), "1", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
