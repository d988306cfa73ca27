package analytics

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultMonthWindow is the number of trailing months shown when none is requested.
const DefaultMonthWindow = 12

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 06"
)

// MonthlyTotals sums amounts into the months trailing window ending with the
// month containing now, oldest first. Every month in the window is present
// even when it has no transactions. Transactions with an unparseable date or
// outside the window are skipped.
func MonthlyTotals(txns []domain.Transaction, now time.Time, months int) []domain.MonthBucket {
	if months <= 0 {
		return []domain.MonthBucket{}
	}

	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	buckets := make([]domain.MonthBucket, months)
	index := make(map[string]int, months)
	for i := range buckets {
		m := anchor.AddDate(0, i-(months-1), 0)
		key := m.Format(monthKeyLayout)
		buckets[i] = domain.MonthBucket{
			Year:  m.Year(),
			Month: m.Month(),
			Key:   key,
			Label: m.Format(monthLabelLayout),
			Total: decimal.Zero,
		}
		index[key] = i
	}

	for _, t := range txns {
		d, ok := ParseDate(t.Date)
		if !ok {
			continue
		}
		i, ok := index[d.Format(monthKeyLayout)]
		if !ok {
			continue
		}
		buckets[i].Total = buckets[i].Total.Add(AmountOf(t))
	}
	return buckets
}
