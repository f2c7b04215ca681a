package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
	"github.com/AlexCode404/tg-fin-bot-1/internal/log"
)

const (
	formatCSV  = "csv"
	formatPDF  = "pdf"
	formatBoth = "both"
)

func (b *Bot) handleAdd(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		b.reply(msg, "Please provide an amount and a category.\nExample: /add 100 food")
		return
	}

	amount, err := core.ParseAmount(args[0])
	if err != nil {
		b.reply(msg, "Please provide a valid positive amount.\nExample: /add 100 food")
		return
	}
	category := core.NormalizeCategory(args[1])

	id, err := b.ledger.AddExpense(ctx, msg.From.ID, amount, category)
	switch {
	case errors.Is(err, core.ErrCategoryNotFound):
		names, listErr := b.ledger.Categories(ctx)
		if listErr != nil {
			b.logger.ErrorContext(ctx, "Failed to list categories", log.FieldError, listErr)
			b.reply(msg, genericFailureText)
			return
		}
		b.reply(msg, fmt.Sprintf("Category %q not found.\nAvailable categories: %s", category, strings.Join(names, ", ")))
	case err != nil:
		b.logger.ErrorContext(ctx, "Failed to add expense",
			log.FieldUserID, msg.From.ID,
			log.FieldCategory, category,
			log.FieldAmount, amount.Cents,
			log.FieldError, err)
		b.reply(msg, genericFailureText)
	default:
		b.logger.InfoContext(ctx, "Expense added",
			log.FieldUserID, msg.From.ID,
			log.FieldExpenseID, id,
			log.FieldCategory, category,
			log.FieldAmount, amount.Cents)
		b.reply(msg, fmt.Sprintf("Added %s to %q.", amount, category))
	}
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	year, month := parsePeriodArg(strings.Fields(msg.CommandArguments()))

	summary, err := b.ledger.Summarize(ctx, msg.From.ID, year, month)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to summarize month",
			log.FieldUserID, msg.From.ID,
			log.FieldError, err)
		b.reply(msg, genericFailureText)
		return
	}

	if !summary.HasExpenses() {
		b.reply(msg, fmt.Sprintf("No expenses for %s %d.", summary.MonthName(), summary.Year))
		return
	}
	b.reply(msg, formatSummary(summary))
}

func (b *Bot) handleCategories(ctx context.Context, msg *tgbotapi.Message) {
	names, err := b.ledger.Categories(ctx)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to list categories", log.FieldError, err)
		b.reply(msg, genericFailureText)
		return
	}
	b.reply(msg, formatCategories(names))
}

func (b *Bot) handleExport(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	format := formatBoth
	if len(args) > 0 {
		switch strings.ToLower(args[len(args)-1]) {
		case formatCSV:
			format = formatCSV
			args = args[:len(args)-1]
		case formatPDF:
			format = formatPDF
			args = args[:len(args)-1]
		}
	}
	year, month := parsePeriodArg(args)
	year, month = core.ResolvePeriod(year, month)

	b.reply(msg, "Preparing your report, one moment...")

	var csvPath, pdfPath string
	g, gctx := errgroup.WithContext(ctx)
	if format == formatBoth || format == formatCSV {
		g.Go(func() error {
			path, err := b.exporter.ExportCSV(gctx, msg.From.ID, year, month)
			csvPath = path
			return err
		})
	}
	if format == formatBoth || format == formatPDF {
		g.Go(func() error {
			path, err := b.exporter.ExportPDF(gctx, msg.From.ID, year, month)
			pdfPath = path
			return err
		})
	}
	if err := g.Wait(); err != nil {
		b.logger.ErrorContext(ctx, "Failed to build report",
			log.FieldUserID, msg.From.ID,
			log.FieldYear, year,
			log.FieldMonth, int(month),
			log.FieldError, err)
		b.reply(msg, "Failed to build the report. Please try again.")
		return
	}

	caption := fmt.Sprintf("Expenses for %s %d", month, year)
	if csvPath != "" {
		b.replyDocument(msg, csvPath, caption+" (CSV)")
	}
	if pdfPath != "" {
		b.replyDocument(msg, pdfPath, caption+" (PDF)")
	}
}
