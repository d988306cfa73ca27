package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a local user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByProvider retrieves a user by the subject an external provider issued.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. It returns apperrors.ErrDuplicate when the
	// username is taken.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
