package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Dashboard   DashboardSvc
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
