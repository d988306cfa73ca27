package analytics_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id, amount, category, date string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        analytics.ParseAmount(amount),
		Category:      category,
		Date:          date,
	}
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.TransactionID)
	}
	return out
}

func TestSort(t *testing.T) {
	input := []domain.Transaction{
		txn("a", "10", "Banana", "2024-03-01"),
		txn("b", "25.5", "apple", "2024-01-15"),
		txn("c", "-4", "Cherry", "2024-02-10"),
	}

	tests := []struct {
		name string
		key  analytics.SortKey
		dir  analytics.SortDirection
		want []string
	}{
		{"date ascending", analytics.SortByDate, analytics.Ascending, []string{"b", "c", "a"}},
		{"date descending", analytics.SortByDate, analytics.Descending, []string{"a", "c", "b"}},
		{"amount ascending", analytics.SortByAmount, analytics.Ascending, []string{"c", "a", "b"}},
		{"amount descending", analytics.SortByAmount, analytics.Descending, []string{"b", "a", "c"}},
		{"category ascending", analytics.SortByCategory, analytics.Ascending, []string{"b", "a", "c"}},
		{"category descending", analytics.SortByCategory, analytics.Descending, []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Sort(input, tt.key, tt.dir)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	input := []domain.Transaction{
		txn("a", "1", "x", "2024-03-01"),
		txn("b", "2", "y", "2024-01-01"),
	}

	got := analytics.Sort(input, analytics.SortByDate, analytics.Ascending)

	assert.Equal(t, []string{"b", "a"}, ids(got))
	assert.Equal(t, []string{"a", "b"}, ids(input))
}

func TestSort_StableOnTies(t *testing.T) {
	input := []domain.Transaction{
		txn("first", "5", "Food", "2024-01-01"),
		txn("second", "5", "food", "2024-01-01"),
		txn("third", "5", "FOOD", "2024-01-01"),
	}

	for _, key := range []analytics.SortKey{analytics.SortByDate, analytics.SortByAmount, analytics.SortByCategory} {
		for _, dir := range []analytics.SortDirection{analytics.Ascending, analytics.Descending} {
			got := analytics.Sort(input, key, dir)
			assert.Equal(t, []string{"first", "second", "third"}, ids(got), "key=%s dir=%s", key, dir)
		}
	}
}

func TestSort_InvalidAmountsLast(t *testing.T) {
	input := []domain.Transaction{
		txn("bad", "abc", "", "2024-01-01"),
		txn("low", "1", "", "2024-01-01"),
		txn("high", "9", "", "2024-01-01"),
	}

	asc := analytics.Sort(input, analytics.SortByAmount, analytics.Ascending)
	desc := analytics.Sort(input, analytics.SortByAmount, analytics.Descending)

	assert.Equal(t, []string{"low", "high", "bad"}, ids(asc))
	assert.Equal(t, []string{"high", "low", "bad"}, ids(desc))
}

func TestSort_EmptyInput(t *testing.T) {
	got := analytics.Sort(nil, analytics.SortByDate, analytics.Descending)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSort_Idempotent(t *testing.T) {
	input := []domain.Transaction{
		txn("a", "3", "b", "2024-02-01"),
		txn("b", "1", "a", "2024-03-01"),
		txn("c", "2", "c", "2024-01-01"),
	}
	once := analytics.Sort(input, analytics.SortByAmount, analytics.Descending)
	twice := analytics.Sort(once, analytics.SortByAmount, analytics.Descending)
	assert.Equal(t, ids(once), ids(twice))
}

func TestParseSortKey(t *testing.T) {
	key, err := analytics.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, analytics.SortByDate, key)

	key, err = analytics.ParseSortKey(" Amount ")
	require.NoError(t, err)
	assert.Equal(t, analytics.SortByAmount, key)

	_, err = analytics.ParseSortKey("notes")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseSortDirection(t *testing.T) {
	dir, err := analytics.ParseSortDirection("")
	require.NoError(t, err)
	assert.Equal(t, analytics.Descending, dir)

	dir, err = analytics.ParseSortDirection("ascending")
	require.NoError(t, err)
	assert.Equal(t, analytics.Ascending, dir)

	_, err = analytics.ParseSortDirection("sideways")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseAmount(t *testing.T) {
	valid := analytics.ParseAmount(" 12.50 ")
	require.True(t, valid.Valid)
	assert.True(t, valid.Decimal.Equal(decimal.RequireFromString("12.5")))

	assert.False(t, analytics.ParseAmount("twelve").Valid)
	assert.False(t, analytics.ParseAmount("").Valid)
}

func TestFitAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "42.50", want: "42.5", ok: true},
		{raw: "1.50000", want: "1.5", ok: true},
		{raw: "-0.0001", want: "-0.0001", ok: true},
		{raw: "9999999999999999.9999", want: "9999999999999999.9999", ok: true},
		{raw: "-9999999999999999", want: "-9999999999999999", ok: true},
		{raw: "12e3", want: "12000", ok: true},
		{raw: "0e50000000", want: "0", ok: true},
		{raw: "10000000000000000", ok: false},
		{raw: "0.00001", ok: false},
		{raw: "1e50000000", ok: false},
		{raw: "-1e50000000", ok: false},
		{raw: "1e-50000000", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := analytics.FitAmount(decimal.RequireFromString(tt.raw))
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
