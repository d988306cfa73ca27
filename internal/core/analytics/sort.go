package analytics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the transaction field used for ordering.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
)

// SortDirection is the ordering direction.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Defaults used when the caller does not specify an ordering.
const (
	DefaultSortKey       = SortByDate
	DefaultSortDirection = Descending
)

// ParseSortKey maps a query value to a SortKey. Empty input selects the default.
func ParseSortKey(raw string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(raw))); key {
	case "":
		return DefaultSortKey, nil
	case SortByDate, SortByAmount, SortByCategory:
		return key, nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", apperrors.ErrValidation, raw)
}

// ParseSortDirection maps a query value to a SortDirection. Empty input selects
// the default.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultSortDirection, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: unknown sort direction %q", apperrors.ErrValidation, raw)
}

// Sort returns a new slice holding txns ordered by key in direction dir.
// The input is never modified. Ties keep their input order, and transactions
// with an invalid amount are placed last when sorting by amount regardless of
// direction.
func Sort(txns []domain.Transaction, key SortKey, dir SortDirection) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)

	compare := comparatorFor(key)
	sign := 1
	if dir == Descending {
		sign = -1
	}

	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		if key == SortByAmount {
			switch {
			case !a.Amount.Valid && !b.Amount.Valid:
				return 0
			case !a.Amount.Valid:
				return 1
			case !b.Amount.Valid:
				return -1
			}
		}
		return sign * compare(a, b)
	})
	return sorted
}

func comparatorFor(key SortKey) func(a, b domain.Transaction) int {
	switch key {
	case SortByAmount:
		return func(a, b domain.Transaction) int {
			return a.Amount.Decimal.Cmp(b.Amount.Decimal)
		}
	case SortByCategory:
		// collators keep internal buffers, so each sort gets its own
		col := collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics)
		return func(a, b domain.Transaction) int {
			return col.CompareString(a.Category, b.Category)
		}
	default:
		// dates are ISO calendar strings, lexical order is chronological
		return func(a, b domain.Transaction) int {
			return strings.Compare(a.Date, b.Date)
		}
	}
}
