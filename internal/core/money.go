// Package core holds the ledger's value types: money, dates, expenses and
// monthly summaries. All money arithmetic happens on integer cents so that
// per-category sums and the grand total agree exactly; rounding only ever
// happens at the presentation layer.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is an exact amount in cents.
type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Float returns the amount as a float64. Display only; use cents for
// calculations.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

// String renders the amount as a plain two-decimal value with no thousands
// separator, e.g. 1234 cents -> "12.34".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.Cents/100, m.Cents%100)
}

// ParseAmount converts a user-supplied decimal string to Money.
//
// Both dot (12.34) and comma (12,34) separators are accepted. A third
// decimal digit rounds half-up. Zero, negative and explicitly signed values
// are rejected with ErrInvalidAmount.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}

	intPart, fracPart, err := splitDecimal(s)
	if err != nil {
		return Money{}, err
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	// Guard the *100 below.
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return Money{}, ErrInvalidAmount
	}

	cents := iv*100 + fracCents(fracPart)
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

func splitDecimal(s string) (intPart, fracPart string, err error) {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return "", "", ErrInvalidAmount
	}
	intPart = parts[0]
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return "", "", ErrInvalidAmount
		}
	}
	return intPart, fracPart, nil
}

// fracCents reads up to two fractional digits; a third digit rounds half-up.
func fracCents(frac string) int64 {
	if frac == "" {
		return 0
	}
	cents := int64(frac[0]-'0') * 10
	if len(frac) > 1 {
		cents += int64(frac[1] - '0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++
		}
	}
	return cents
}
