package core

import (
	"errors"
	"strings"
	"time"
)

// Domain errors. Callers branch with errors.Is; everything else coming out
// of the lower layers is an infrastructure error and propagates as-is.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidAmount    = errors.New("invalid amount")
)

type (
	// Date is a day-precision point in time, always UTC.
	Date struct {
		time.Time
	}

	// Expense is one dated, user-owned, categorized amount. Category is a
	// value reference to a registry name, not a live object.
	Expense struct {
		ID       int64
		UserID   int64
		Amount   Money
		Category string
		Date     Date
	}
)

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC date truncated to day precision.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ISO renders the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// NormalizeCategory lower-cases and trims a user-supplied category name.
// Every lookup against the registry goes through this first.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.New("empty category")
	}
	return e.Date.Validate()
}

// ResolvePeriod fills a zero year or month from the current UTC date.
// The default is resolved here, once, so that summarizing or exporting with
// (0, 0) behaves exactly like passing today's year and month explicitly.
func ResolvePeriod(year int, month time.Month) (int, time.Month) {
	now := time.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	return year, month
}
