package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, key analytics.SortKey, dir analytics.SortDirection) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, key, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context, ownerID string, months, top int) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, ownerID, months, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockDashboardService) GetMonthlyTotals(ctx context.Context, ownerID string, months int) ([]domain.MonthBucket, error) {
	args := m.Called(ctx, ownerID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthBucket), args.Error(1)
}

func (m *MockDashboardService) GetCategoryTotals(ctx context.Context, ownerID string, top int) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, ownerID, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

// ResolveCategoryStyle is pure, so the mock delegates instead of recording.
func (m *MockDashboardService) ResolveCategoryStyle(label string) domain.CategoryStyle {
	return analytics.ResolveStyle(label)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, provider, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) VerifyIDToken(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}

var (
	_ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)
	_ portssvc.DashboardSvc         = (*MockDashboardService)(nil)
	_ portssvc.UserSvcFacade        = (*MockUserService)(nil)
	_ portssvc.TokenSvcFacade       = (*MockTokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)
)
