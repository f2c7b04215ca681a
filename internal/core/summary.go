package core

import "time"

// CategoryAmount is one category's total inside a monthly summary.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary holds per-category totals and the grand total for one user month.
// Categories keep the first-encountered order of the underlying month query;
// only categories with at least one expense appear.
type Summary struct {
	Year       int
	Month      time.Month
	Total      Money
	Categories []CategoryAmount
}

// MonthName returns the English month name for display.
func (s Summary) MonthName() string {
	return s.Month.String()
}

// HasExpenses reports whether the month had any spending. Share must only be
// called when this returns true.
func (s Summary) HasExpenses() bool {
	return len(s.Categories) > 0
}

// Share returns the percentage of the grand total held by a. Undefined for a
// zero total; callers branch on HasExpenses first.
func (s Summary) Share(a Money) float64 {
	return float64(a.Cents) / float64(s.Total.Cents) * 100.0
}
