package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "ft-test",
		GoogleClientID:    "client-id",
	}
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := testConfig()
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-42"})

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
}

func TestGoogleOAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	validator := func(_ context.Context, raw, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if raw != "good-token" {
			return nil, errors.New("idtoken: invalid token")
		}
		return &idtoken.Payload{
			Subject: "google-sub",
			Claims: map[string]interface{}{
				"email":          "erin@example.com",
				"email_verified": true,
				"name":           "Erin",
			},
		}, nil
	}
	svc := services.NewGoogleOAuthService(testConfig(), validator)

	token := (&oauth2.Token{AccessToken: "at"}).WithExtra(map[string]interface{}{"id_token": "good-token"})
	info, err := svc.VerifyIDToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "client-id", gotAudience)
	assert.Equal(t, "google-sub", info.Subject)
	assert.Equal(t, "erin@example.com", info.Email)
	assert.True(t, info.EmailVerified)
	assert.Equal(t, "Erin", info.Name)
}

func TestGoogleOAuthService_VerifyIDToken_Failures(t *testing.T) {
	validator := func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	}
	svc := services.NewGoogleOAuthService(testConfig(), validator)

	_, err := svc.VerifyIDToken(context.Background(), &oauth2.Token{AccessToken: "at"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "missing id_token")

	token := (&oauth2.Token{}).WithExtra(map[string]interface{}{"id_token": "expired"})
	_, err = svc.VerifyIDToken(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
