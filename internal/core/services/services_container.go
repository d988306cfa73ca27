package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Dashboard: NewDashboardService(
			repos.TransactionRepo,
			WithDashboardDefaults(cfg.DefaultMonthWindow, cfg.DefaultTopCategories),
		),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg, nil),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.DashboardSvc         = (*dashboardService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.TokenSvcFacade       = (*tokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)
)
