package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TransactionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.SaveTransaction(ctx, domain.Transaction{TransactionID: fmt.Sprint(i), OwnerID: "alice"}))
	}
	require.NoError(t, s.SaveTransaction(ctx, domain.Transaction{TransactionID: "x", OwnerID: "bob"}))

	txns, err := s.ListTransactionsByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "3", txns[0].TransactionID)
	assert.Equal(t, "1", txns[2].TransactionID)

	empty, err := s.ListTransactionsByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.SaveTransaction(ctx, domain.Transaction{TransactionID: "1", OwnerID: "alice", Category: "Food"}))

	txns, _ := s.ListTransactionsByOwner(ctx, "alice")
	txns[0].Category = "changed"

	again, _ := s.ListTransactionsByOwner(ctx, "alice")
	assert.Equal(t, "Food", again[0].Category)
}

func TestStore_DeleteScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.SaveTransaction(ctx, domain.Transaction{TransactionID: "1", OwnerID: "alice"}))
	require.NoError(t, s.SaveTransaction(ctx, domain.Transaction{TransactionID: "2", OwnerID: "alice"}))

	assert.ErrorIs(t, s.DeleteTransaction(ctx, "bob", "1"), apperrors.ErrNotFound)
	require.NoError(t, s.DeleteTransaction(ctx, "alice", "1"))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "alice", "1"), apperrors.ErrNotFound)

	txns, _ := s.ListTransactionsByOwner(ctx, "alice")
	require.Len(t, txns, 1)
	assert.Equal(t, "2", txns[0].TransactionID)
}

func TestStore_DuplicateTransaction(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	txn := domain.Transaction{TransactionID: "1", OwnerID: "alice"}
	require.NoError(t, s.SaveTransaction(ctx, txn))
	assert.ErrorIs(t, s.SaveTransaction(ctx, txn), apperrors.ErrDuplicate)
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	local := domain.User{UserID: "u1", Username: "alice"}
	google := domain.User{UserID: "u2", Username: "g", AuthProvider: domain.ProviderGoogle, ProviderUserID: "sub"}

	require.NoError(t, s.SaveUser(ctx, local))
	require.NoError(t, s.SaveUser(ctx, google))
	assert.ErrorIs(t, s.SaveUser(ctx, domain.User{UserID: "u3", Username: "alice"}), apperrors.ErrDuplicate)

	u, err := s.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)

	u, err = s.FindUserByProvider(ctx, domain.ProviderGoogle, "sub")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.UserID)

	_, err = s.FindUserByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.SaveTransaction(ctx, domain.Transaction{TransactionID: fmt.Sprint(i), OwnerID: "alice"})
			_, _ = s.ListTransactionsByOwner(ctx, "alice")
		}(i)
	}
	wg.Wait()

	txns, err := s.ListTransactionsByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, txns, 50)
}
