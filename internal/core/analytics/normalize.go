// Package analytics holds the pure aggregation, sorting and styling rules
// applied to a user's transactions. Nothing in here touches storage or I/O.
package analytics

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format transactions are stored with.
const DateLayout = "2006-01-02"

// Amount bounds shared by every storage driver, matching NUMERIC(20, 4).
const (
	MaxAmountIntegerDigits = 16
	MaxAmountScale         = 4
)

// NormalizeCategory trims the label and substitutes the Uncategorized label
// for empty input.
func NormalizeCategory(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return domain.UncategorizedLabel
	}
	return trimmed
}

// CategoryKey is the grouping and hashing key for a label: normalized, then
// case-folded, so "Food" and "food " land in the same bucket.
func CategoryKey(label string) string {
	return strings.ToLower(NormalizeCategory(label))
}

// AmountOf returns the numeric amount of t, with invalid amounts counting as zero.
func AmountOf(t domain.Transaction) decimal.Decimal {
	if t.Amount.Valid {
		return t.Amount.Decimal
	}
	return decimal.Zero
}

// ParseAmount converts raw user input to an amount. Unparseable input yields
// an invalid NullDecimal rather than an error.
func ParseAmount(raw string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FitAmount reports whether d has at most MaxAmountIntegerDigits integer
// digits and MaxAmountScale significant fractional digits, and returns it
// rounded to MaxAmountScale. Digits are counted on the coefficient so a huge
// exponent is rejected without being expanded.
func FitAmount(d decimal.Decimal) (decimal.Decimal, bool) {
	digits := strings.TrimPrefix(d.Coefficient().String(), "-")
	if digits == "0" {
		return decimal.Zero, true
	}
	significant := strings.TrimRight(digits, "0")
	exp := int64(d.Exponent()) + int64(len(digits)-len(significant))
	if exp < -MaxAmountScale || int64(len(significant))+exp > MaxAmountIntegerDigits {
		return decimal.Decimal{}, false
	}
	return d.Round(MaxAmountScale), true
}

// ParseDate reads a transaction date. Plain calendar dates are expected, full
// RFC3339 timestamps are accepted too.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
