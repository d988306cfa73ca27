package analytics_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/stretchr/testify/assert"
)

func TestPaletteIndex(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Food", 4},
		{"food", 4},
		{"  FOOD ", 4},
		{"Transport", 9},
		{"Groceries", 5},
		{"Rent", 1},
		{"Dining", 3},
		{"Other", 6},
		{"", 6},
		{"Uncategorized", 6},
		{"a very long category label that overflows", 5},
		{"😀 fun", 4},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.PaletteIndex(tt.label, analytics.PaletteSize))
		})
	}
}

func TestPaletteIndex_InRange(t *testing.T) {
	for _, label := range []string{"x", "Health", "Savings", "日本", "Bills"} {
		for _, size := range []int{1, 3, 10, 17} {
			idx := analytics.PaletteIndex(label, size)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, size)
		}
	}
	assert.Equal(t, 0, analytics.PaletteIndex("Food", 0))
}

func TestResolveStyle(t *testing.T) {
	style := analytics.ResolveStyle("Transport")

	assert.Equal(t, "Transport", style.Label)
	assert.Equal(t, 9, style.PaletteIndex)
	assert.Equal(t, "#FB923C", style.Color)
	assert.Equal(t, "rgba(251, 146, 60, 0.14)", style.Background)
	assert.Equal(t, "rgba(251, 146, 60, 0.28)", style.Border)
	assert.Equal(t, "rgba(251, 146, 60, 0.88)", style.ChartFill)
	assert.Equal(t, "rgba(251, 146, 60, 0.7)", style.ChartHover)
	assert.Equal(t, "directions_car", style.Icon)
}

func TestResolveStyle_CaseInsensitive(t *testing.T) {
	assert.Equal(t, analytics.ResolveStyle("food").Color, analytics.ResolveStyle("FOOD").Color)
	assert.Equal(t, "local_grocery_store", analytics.ResolveStyle("GROCERIES").Icon)
	assert.Equal(t, analytics.DefaultIcon, analytics.ResolveStyle("Pets").Icon)
}

func TestResolveStyle_Blank(t *testing.T) {
	style := analytics.ResolveStyle("  ")
	assert.Equal(t, "Uncategorized", style.Label)
	assert.Equal(t, analytics.Palette()[6], style.Color)
}

func TestPalette_ReturnsCopy(t *testing.T) {
	p := analytics.Palette()
	p[0] = "#000000"
	assert.Equal(t, "#6366F1", analytics.Palette()[0])
}
