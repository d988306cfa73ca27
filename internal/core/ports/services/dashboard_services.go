package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// DashboardSvc defines the spending summaries shown on the dashboard.
// A months or top value of zero selects the configured default.
type DashboardSvc interface {
	GetSummary(ctx context.Context, ownerID string, months, top int) (*domain.DashboardSummary, error)
	GetMonthlyTotals(ctx context.Context, ownerID string, months int) ([]domain.MonthBucket, error)
	GetCategoryTotals(ctx context.Context, ownerID string, top int) ([]domain.CategoryTotal, error)
	// ResolveCategoryStyle returns the color and icon assigned to a category label.
	ResolveCategoryStyle(label string) domain.CategoryStyle
}
