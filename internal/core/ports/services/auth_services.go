package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyIDToken validates the ID token carried by token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
