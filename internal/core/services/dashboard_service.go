package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

// dashboardService feeds the owner's transactions through the analytics package.
type dashboardService struct {
	BaseService
	txnRepo       portsrepo.TransactionReader
	clock         func() time.Time
	defaultMonths int
	defaultTop    int
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardClock overrides the clock that anchors the monthly window.
func WithDashboardClock(clock func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.clock = clock
	}
}

// WithDashboardDefaults sets the window and category count used when a caller passes zero.
func WithDashboardDefaults(months, top int) DashboardServiceOption {
	return func(s *dashboardService) {
		if months > 0 {
			s.defaultMonths = months
		}
		if top > 0 {
			s.defaultTop = top
		}
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(repo portsrepo.TransactionReader, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		txnRepo:       repo,
		clock:         time.Now,
		defaultMonths: analytics.DefaultMonthWindow,
		defaultTop:    analytics.DefaultTopCategories,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *dashboardService) GetSummary(ctx context.Context, ownerID string, months, top int) (*domain.DashboardSummary, error) {
	txns, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	categories := analytics.CategoryTotals(txns, s.topOrDefault(top))
	summary := &domain.DashboardSummary{
		KPIs:            analytics.ComputeKPIs(txns),
		Monthly:         analytics.MonthlyTotals(txns, now, s.monthsOrDefault(months)),
		Categories:      categories,
		HasCategoryData: analytics.HasCategoryData(categories),
		GeneratedAt:     now.UTC(),
	}

	s.LogDebug(ctx, "Dashboard summary computed",
		slog.Int("transactions", len(txns)),
		slog.Int("categories", len(categories)))
	return summary, nil
}

func (s *dashboardService) GetMonthlyTotals(ctx context.Context, ownerID string, months int) ([]domain.MonthBucket, error) {
	txns, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyTotals(txns, s.clock(), s.monthsOrDefault(months)), nil
}

func (s *dashboardService) GetCategoryTotals(ctx context.Context, ownerID string, top int) ([]domain.CategoryTotal, error) {
	txns, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryTotals(txns, s.topOrDefault(top)), nil
}

func (s *dashboardService) ResolveCategoryStyle(label string) domain.CategoryStyle {
	return analytics.ResolveStyle(label)
}

func (s *dashboardService) load(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for dashboard", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

func (s *dashboardService) monthsOrDefault(months int) int {
	if months <= 0 {
		return s.defaultMonths
	}
	return months
}

func (s *dashboardService) topOrDefault(top int) int {
	if top <= 0 {
		return s.defaultTop
	}
	return top
}
