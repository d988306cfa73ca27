package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthBucket is the summed amount of one calendar month in a trailing window.
type MonthBucket struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Key   string          `json:"key"`   // "2006-01", stable ordering key
	Label string          `json:"label"` // "Jan 06"
	Total decimal.Decimal `json:"total"`
}

// CategoryTotal is the summed amount of one category group.
type CategoryTotal struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Other bool            `json:"other"` // True for the synthetic bucket of collapsed categories
}

// CategoryStyle is the stable visual identity of a category label.
type CategoryStyle struct {
	Label        string `json:"label"`
	PaletteIndex int    `json:"paletteIndex"`
	Color        string `json:"color"`      // #RRGGBB
	Background   string `json:"background"` // chip background
	Border       string `json:"border"`     // chip border
	ChartFill    string `json:"chartFill"`
	ChartHover   string `json:"chartHover"`
	Icon         string `json:"icon"`
}

// SpendingKPIs are the headline figures of a transaction set.
type SpendingKPIs struct {
	Total            decimal.Decimal `json:"total"`
	AveragePerRecord decimal.Decimal `json:"averagePerTransaction"`
	Count            int             `json:"count"`
}

// DashboardSummary bundles everything the spending dashboard renders.
type DashboardSummary struct {
	KPIs            SpendingKPIs    `json:"kpis"`
	Monthly         []MonthBucket   `json:"monthly"`
	Categories      []CategoryTotal `json:"categories"`
	HasCategoryData bool            `json:"hasCategoryData"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
