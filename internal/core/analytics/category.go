package analytics

import (
	"slices"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopCategories is the number of named categories kept before the rest
// are folded into Other.
const DefaultTopCategories = 6

// CategoryTotals groups txns by case-folded category, sums each group and
// returns the groups by descending total. Groups of equal total keep the order
// in which they first appeared. The label shown for a group is the first
// spelling seen.
//
// When top > 0 and there are more than top groups, the remainder is summed
// into a trailing Other entry, which is only emitted when that sum is positive.
// When every group sums to zero the result is empty.
func CategoryTotals(txns []domain.Transaction, top int) []domain.CategoryTotal {
	var (
		totals []domain.CategoryTotal
		byKey  = make(map[string]int)
	)
	for _, t := range txns {
		key := CategoryKey(t.Category)
		i, ok := byKey[key]
		if !ok {
			i = len(totals)
			byKey[key] = i
			totals = append(totals, domain.CategoryTotal{
				Label: NormalizeCategory(t.Category),
				Total: decimal.Zero,
			})
		}
		totals[i].Total = totals[i].Total.Add(AmountOf(t))
	}

	if !slices.ContainsFunc(totals, func(c domain.CategoryTotal) bool { return !c.Total.IsZero() }) {
		return []domain.CategoryTotal{}
	}

	slices.SortStableFunc(totals, func(a, b domain.CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	if top <= 0 || len(totals) <= top {
		return totals
	}

	rest := decimal.Zero
	for _, c := range totals[top:] {
		rest = rest.Add(c.Total)
	}
	result := totals[:top:top]
	if rest.IsPositive() {
		result = append(result, domain.CategoryTotal{
			Label: domain.OtherLabel,
			Total: rest,
			Other: true,
		})
	}
	return result
}

// HasCategoryData reports whether any category has a positive total, which is
// what the category chart needs to render anything.
func HasCategoryData(totals []domain.CategoryTotal) bool {
	return slices.ContainsFunc(totals, func(c domain.CategoryTotal) bool {
		return c.Total.IsPositive()
	})
}
