package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
)

const userColumns = `user_id, username, name, email, password_hash, auth_provider, provider_user_id,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type UserRepository struct {
	BaseRepository
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	var deletedAt sql.NullInt64
	if m.DeletedAt != nil {
		deletedAt = sql.NullInt64{Int64: toUnixNano(*m.DeletedAt), Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Username, m.Name, m.Email, m.PasswordHash, m.AuthProvider, m.ProviderUserID,
		toUnixNano(m.CreatedAt), m.CreatedBy, toUnixNano(m.LastUpdatedAt), m.LastUpdatedBy, deletedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s already exists", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "auth_provider = ? AND provider_user_id = ?", string(provider), providerUserID)
}

func (r *UserRepository) findOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where+` AND deleted_at IS NULL`, args...)

	var (
		m                        models.User
		createdAt, lastUpdatedAt int64
		deletedAt                sql.NullInt64
	)
	err := row.Scan(&m.UserID, &m.Username, &m.Name, &m.Email, &m.PasswordHash, &m.AuthProvider, &m.ProviderUserID,
		&createdAt, &m.CreatedBy, &lastUpdatedAt, &m.LastUpdatedBy, &deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	m.CreatedAt = fromUnixNano(createdAt)
	m.LastUpdatedAt = fromUnixNano(lastUpdatedAt)
	if deletedAt.Valid {
		t := fromUnixNano(deletedAt.Int64)
		m.DeletedAt = &t
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
