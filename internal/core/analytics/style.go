package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// PaletteSize is the number of colors categories are spread across.
const PaletteSize = 10

var palette = [PaletteSize]string{
	"#6366F1",
	"#35B8F5",
	"#F55D0B",
	"#10B953",
	"#F43F5E",
	"#8B5CF6",
	"#14B8B5",
	"#84CC16",
	"#3B76F6",
	"#FB923C",
}

const (
	alphaBackground = 0.14
	alphaBorder     = 0.28
	alphaChartFill  = 0.88
	alphaChartHover = 0.7
)

// DefaultIcon is used for labels without an entry in the icon table.
const DefaultIcon = "category"

// keyed by CategoryKey
var icons = map[string]string{
	"income":         "attach_money",
	"food/groceries": "local_grocery_store",
	"groceries":      "local_grocery_store",
	"dining":         "restaurant",
	"transport":      "directions_car",
	"rent":           "home",
	"housing":        "home",
	"entertainment":  "movie",
	"health":         "medical_services",
	"fitness":        "fitness_center",
	"education":      "school",
	"shopping":       "shopping_cart",
	"utilities":      "payments",
	"bills":          "payments",
	"savings":        "savings",
}

// Palette returns a copy of the category color palette.
func Palette() []string {
	out := make([]string, PaletteSize)
	copy(out, palette[:])
	return out
}

// PaletteIndex maps a label to a stable slot in [0, size). The hash runs over
// the UTF-16 code units of the case-folded label with 32-bit wraparound, so
// the same label picks the same slot in every client that shares the scheme.
func PaletteIndex(label string, size int) int {
	if size <= 0 {
		return 0
	}
	var h int32
	for _, unit := range utf16.Encode([]rune(CategoryKey(label))) {
		h = h*31 + int32(unit)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(size))
}

// IconFor returns the icon name for a label, matched case-insensitively.
func IconFor(label string) string {
	if icon, ok := icons[CategoryKey(label)]; ok {
		return icon
	}
	return DefaultIcon
}

// ResolveStyle returns the full visual identity of a category label.
func ResolveStyle(label string) domain.CategoryStyle {
	normalized := NormalizeCategory(label)
	idx := PaletteIndex(normalized, PaletteSize)
	color := palette[idx]
	return domain.CategoryStyle{
		Label:        normalized,
		PaletteIndex: idx,
		Color:        color,
		Background:   rgba(color, alphaBackground),
		Border:       rgba(color, alphaBorder),
		ChartFill:    rgba(color, alphaChartFill),
		ChartHover:   rgba(color, alphaChartHover),
		Icon:         IconFor(normalized),
	}
}

// rgba expands a #RRGGBB color with the given alpha. Malformed input is
// returned unchanged.
func rgba(color string, alpha float64) string {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return color
	}
	var rgb [3]uint64
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color
		}
		rgb[i] = v
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb[0], rgb[1], rgb[2], strconv.FormatFloat(alpha, 'f', -1, 64))
}
