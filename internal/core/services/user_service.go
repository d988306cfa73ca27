package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	clock    func() time.Time
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, clock: time.Now}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	if err := s.ensureUsernameFree(ctx, username); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = username
	}
	user := s.newUser(username, name, domain.ProviderLocal)
	user.PasswordHash = hash

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by username")
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser never says which of username or password was wrong.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.DeletedAt != nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.Subject == "" {
		return nil, fmt.Errorf("%w: identity subject is missing", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByProvider(ctx, provider, info.Subject)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up OAuth user", slog.String("provider", string(provider)))
		return nil, err
	}

	username, err := s.pickOAuthUsername(ctx, provider, info.Email)
	if err != nil {
		return nil, err
	}
	name := info.Name
	if name == "" {
		name = username
	}
	user := s.newUser(username, name, provider)
	user.Email = info.Email
	user.ProviderUserID = info.Subject

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user", slog.String("provider", string(provider)))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created from external sign-in", slog.String("user_id", user.UserID), slog.String("provider", string(provider)))
	return &user, nil
}

func (s *userService) newUser(username, name string, provider domain.AuthProvider) domain.User {
	now := s.clock().UTC()
	userID := uuid.NewString()
	return domain.User{
		UserID:       userID,
		Username:     username,
		Name:         name,
		AuthProvider: provider,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

func (s *userService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, username)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check username availability")
		return err
	}
}

// pickOAuthUsername prefers the email address and falls back to a random
// handle when it is missing or already used by a local account.
func (s *userService) pickOAuthUsername(ctx context.Context, provider domain.AuthProvider, email string) (string, error) {
	if email != "" {
		err := s.ensureUsernameFree(ctx, email)
		if err == nil {
			return email, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return "", err
		}
	}
	suffix, err := utils.GenerateSecureRandomString(6)
	if err != nil {
		return "", err
	}
	return strings.ToLower(string(provider)) + "-" + suffix, nil
}
