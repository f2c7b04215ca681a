package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AlexCode404/tg-fin-bot-1/internal/core"
)

const startText = "Hi! I track your expenses. Commands:\n\n" +
	"/add <amount> <category> - record an expense\n" +
	"/stats [YYYY-MM] - monthly summary\n" +
	"/categories - available categories\n" +
	"/export [YYYY-MM] [csv|pdf] - download a report"

const helpText = "Command reference\n\n" +
	"/add <amount> <category> - record an expense\n" +
	"Example: /add 100 food\n\n" +
	"/stats [YYYY-MM] - monthly summary\n" +
	"Example: /stats 2023-05, or just /stats for the current month\n\n" +
	"/categories - available categories\n\n" +
	"/export [YYYY-MM] [csv|pdf] - download a report\n" +
	"Example: /export 2023-05 pdf, or /export csv\n" +
	"Formats: csv, pdf (both by default)"

const genericFailureText = "Something went wrong while handling your request. Please try again."

var periodArgRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// parsePeriodArg reads an optional leading YYYY-MM argument. A missing or
// malformed argument, or an out-of-range month, falls back to zero values,
// which resolve to the current period downstream.
func parsePeriodArg(args []string) (int, time.Month) {
	if len(args) == 0 {
		return 0, 0
	}
	m := periodArgRe.FindStringSubmatch(args[0])
	if m == nil {
		return 0, 0
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return year, 0
	}
	return year, time.Month(month)
}

func formatSummary(s core.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Expenses for %s %d\n\n", s.MonthName(), s.Year)
	for _, ca := range s.Categories {
		fmt.Fprintf(&b, "%s: %s (%.1f%%)\n", ca.Name, ca.Amount, s.Share(ca.Amount))
	}
	fmt.Fprintf(&b, "\nTotal: %s", s.Total)
	return b.String()
}

func formatCategories(names []string) string {
	var b strings.Builder
	b.WriteString("Available categories:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\n- %s", name)
	}
	return b.String()
}
