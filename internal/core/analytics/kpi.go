package analytics

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeKPIs returns the headline figures for txns. The average is rounded to
// two decimal places and is zero for an empty list.
func ComputeKPIs(txns []domain.Transaction) domain.SpendingKPIs {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(AmountOf(t))
	}
	avg := decimal.Zero
	if len(txns) > 0 {
		avg = total.DivRound(decimal.NewFromInt(int64(len(txns))), 2)
	}
	return domain.SpendingKPIs{
		Total:            total,
		AveragePerRecord: avg,
		Count:            len(txns),
	}
}
