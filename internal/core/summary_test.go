package core

import (
	"math"
	"testing"
	"time"
)

func TestSummaryShares(t *testing.T) {
	s := Summary{
		Year:  2023,
		Month: time.May,
		Total: Money{Cents: 15000},
		Categories: []CategoryAmount{
			{Name: "food", Amount: Money{Cents: 10000}},
			{Name: "transport", Amount: Money{Cents: 5000}},
		},
	}

	if !s.HasExpenses() {
		t.Fatal("expected HasExpenses for populated summary")
	}
	if got := s.Share(s.Categories[0].Amount); math.Abs(got-66.666) > 0.01 {
		t.Errorf("food share = %f, want ~66.67", got)
	}
	if got := s.Share(s.Categories[1].Amount); math.Abs(got-33.333) > 0.01 {
		t.Errorf("transport share = %f, want ~33.33", got)
	}

	var sum int64
	for _, ca := range s.Categories {
		sum += ca.Amount.Cents
	}
	if sum != s.Total.Cents {
		t.Errorf("category sum %d != total %d", sum, s.Total.Cents)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := Summary{Year: 2023, Month: time.May}
	if s.HasExpenses() {
		t.Fatal("empty summary must not report expenses")
	}
	if s.Total.Cents != 0 {
		t.Fatalf("empty summary total = %d, want 0", s.Total.Cents)
	}
}

func TestSummaryMonthName(t *testing.T) {
	s := Summary{Month: time.May}
	if got := s.MonthName(); got != "May" {
		t.Errorf("MonthName() = %q, want May", got)
	}
}
