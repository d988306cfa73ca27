package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/platform/migrations"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/sqlite"
	"github.com/SscSPs/finance_tracker/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repos portsrepo.RepositoryProvider
	owner domain.User
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	db, err := database.NewSQLiteDB(ctx, filepath.Join(s.T().TempDir(), "ft.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	applied, err := migrations.RunSQLite(db)
	s.Require().NoError(err)
	s.Require().True(applied)

	s.repos = sqlite.NewRepositoryProvider(db)

	now := time.Now().UTC()
	id := uuid.NewString()
	s.owner = domain.User{
		UserID:       id,
		Username:     "alice",
		Name:         "Alice",
		PasswordHash: "hash",
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: id, LastUpdatedAt: now, LastUpdatedBy: id},
	}
	s.Require().NoError(s.repos.UserRepo.SaveUser(ctx, s.owner))
}

func (s *SQLiteRepositoryTestSuite) TestUsers() {
	ctx := context.Background()

	byName, err := s.repos.UserRepo.FindUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal(s.owner.UserID, byName.UserID)
	s.Equal("hash", byName.PasswordHash)
	s.True(byName.CreatedAt.Equal(s.owner.CreatedAt))

	_, err = s.repos.UserRepo.FindUserByID(ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)

	dup := s.owner
	dup.UserID = uuid.NewString()
	err = s.repos.UserRepo.SaveUser(ctx, dup)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	google := domain.User{UserID: uuid.NewString(), Username: "g-user", Name: "G", AuthProvider: domain.ProviderGoogle, ProviderUserID: "sub-1"}
	s.Require().NoError(s.repos.UserRepo.SaveUser(ctx, google))
	found, err := s.repos.UserRepo.FindUserByProvider(ctx, domain.ProviderGoogle, "sub-1")
	s.Require().NoError(err)
	s.Equal(google.UserID, found.UserID)
	s.Empty(found.PasswordHash)
}

func (s *SQLiteRepositoryTestSuite) TestTransactions() {
	ctx := context.Background()
	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	first := domain.Transaction{TransactionID: uuid.NewString(), OwnerID: s.owner.UserID, Amount: analytics.ParseAmount("12.34"), Category: "Food", Date: "2024-01-31", CreatedAt: base}
	second := domain.Transaction{TransactionID: uuid.NewString(), OwnerID: s.owner.UserID, Category: "Junk", Date: "2024-02-01", CreatedAt: base.Add(time.Second)}

	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(ctx, first))
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(ctx, second))

	txns, err := s.repos.TransactionRepo.ListTransactionsByOwner(ctx, s.owner.UserID)
	s.Require().NoError(err)
	s.Require().Len(txns, 2)
	s.Equal(second.TransactionID, txns[0].TransactionID, "newest first")
	s.False(txns[0].Amount.Valid)
	s.Equal("12.34", txns[1].Amount.Decimal.String())
	s.True(txns[1].CreatedAt.Equal(base))

	other, err := s.repos.TransactionRepo.ListTransactionsByOwner(ctx, uuid.NewString())
	s.Require().NoError(err)
	s.Empty(other)

	err = s.repos.TransactionRepo.DeleteTransaction(ctx, uuid.NewString(), first.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound, "other owners cannot delete")

	s.Require().NoError(s.repos.TransactionRepo.DeleteTransaction(ctx, s.owner.UserID, first.TransactionID))
	err = s.repos.TransactionRepo.DeleteTransaction(ctx, s.owner.UserID, first.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLiteDB(ctx, filepath.Join(t.TempDir(), "again.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = migrations.RunSQLite(db)
	require.NoError(t, err)
	applied, err := migrations.RunSQLite(db)
	require.NoError(t, err)
	assert.False(t, applied)
}
