package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService mints the application's JWT access tokens.
type tokenService struct {
	cfg   *config.Config
	clock func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, clock: time.Now}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.clock().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// IDTokenValidator checks a Google ID token for the given audience.
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     IDTokenValidator
}

// NewGoogleOAuthService creates a new instance of googleOAuthService. A nil
// validator selects idtoken.Validate.
func NewGoogleOAuthService(cfg *config.Config, validate IDTokenValidator) portssvc.GoogleOAuthSvcFacade {
	if validate == nil {
		validate = idtoken.Validate
	}
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: validate,
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
// A code Google rejects is reported as a validation error.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
			return nil, fmt.Errorf("%w: invalid or expired authorization code", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// VerifyIDToken validates the ID token Google returned alongside the access token.
func (s *googleOAuthService) VerifyIDToken(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	if token == nil {
		return nil, fmt.Errorf("%w: missing oauth token", apperrors.ErrUnauthorized)
	}
	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, fmt.Errorf("%w: id_token missing from google response", apperrors.ErrUnauthorized)
	}

	payload, err := s.validate(ctx, raw, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}

	info := &domain.GoogleUserInfo{Subject: payload.Subject}
	info.Email, _ = payload.Claims["email"].(string)
	info.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	info.Name, _ = payload.Claims["name"].(string)
	info.Picture, _ = payload.Claims["picture"].(string)
	return info, nil
}
