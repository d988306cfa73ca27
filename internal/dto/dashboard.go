package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams defines query parameters shared by the dashboard endpoints.
// Zero values select the configured defaults.
type DashboardParams struct {
	Months int `form:"months" binding:"omitempty,min=1,max=120"`
	Top    int `form:"top" binding:"omitempty,min=1,max=50"`
}

// CategoryStyleParams defines the query for resolving a single category style.
type CategoryStyleParams struct {
	Label string `form:"label"`
}

// CategorySummaryResponse is a category total decorated with its visual identity.
type CategorySummaryResponse struct {
	Label string               `json:"label"`
	Total decimal.Decimal      `json:"total"`
	Other bool                 `json:"other"`
	Style domain.CategoryStyle `json:"style"`
}

// MonthlyTotalsResponse wraps the trailing month buckets.
type MonthlyTotalsResponse struct {
	Months []domain.MonthBucket `json:"months"`
}

// CategoryTotalsResponse wraps the decorated category totals.
type CategoryTotalsResponse struct {
	Categories      []CategorySummaryResponse `json:"categories"`
	HasCategoryData bool                      `json:"hasCategoryData"`
}

// DashboardSummaryResponse defines everything the spending dashboard renders.
type DashboardSummaryResponse struct {
	KPIs            domain.SpendingKPIs       `json:"kpis"`
	Monthly         []domain.MonthBucket      `json:"monthly"`
	Categories      []CategorySummaryResponse `json:"categories"`
	HasCategoryData bool                      `json:"hasCategoryData"`
	GeneratedAt     time.Time                 `json:"generatedAt"`
}

// ToCategorySummaryResponses pairs each total with its style. The synthetic
// Other bucket is styled like any other label.
func ToCategorySummaryResponses(totals []domain.CategoryTotal, styleOf func(string) domain.CategoryStyle) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, len(totals))
	for i, c := range totals {
		out[i] = CategorySummaryResponse{
			Label: c.Label,
			Total: c.Total,
			Other: c.Other,
			Style: styleOf(c.Label),
		}
	}
	return out
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO
func ToDashboardSummaryResponse(s *domain.DashboardSummary, styleOf func(string) domain.CategoryStyle) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		KPIs:            s.KPIs,
		Monthly:         s.Monthly,
		Categories:      ToCategorySummaryResponses(s.Categories, styleOf),
		HasCategoryData: s.HasCategoryData,
		GeneratedAt:     s.GeneratedAt,
	}
}
