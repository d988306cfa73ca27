package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	googleRoutes := rg.Group("/google")
	{
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// ExchangeCodeGoogle godoc
// @Summary Sign in with Google
// @Description Exchanges a Google authorization code for an application JWT, creating the user on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Missing or rejected code"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 500 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse "Google unreachable"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnContext(ctx, "Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewBadRequestError("Authorization code is required"), "exchange code")
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, apperrors.NewBadRequestError("Invalid or expired authorization code"), "exchange code")
			return
		}
		respondError(c, apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service"), "exchange code")
		return
	}

	info, err := h.googleOAuthService.VerifyIDToken(ctx, oauth2Token)
	if err != nil {
		logger.WarnContext(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		respondError(c, apperrors.NewUnauthorizedError("Invalid Google ID token"), "exchange code")
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, *info)
	if err != nil {
		respondError(c, err, "process user authentication")
		return
	}
	logger.InfoContext(ctx, "User signed in via Google", slog.String("user_id", user.UserID))

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate application access token", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternalServerError("Failed to generate access token"), "exchange code")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken, ExpiresAt: expiresAt})
}
