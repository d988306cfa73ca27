package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestUserMapping_OptionalColumns(t *testing.T) {
	local := domain.User{UserID: "u1", Username: "alice", PasswordHash: "hash", AuthProvider: domain.ProviderLocal}
	m := mapping.ToModelUser(local)

	assert.True(t, m.PasswordHash.Valid)
	assert.False(t, m.Email.Valid)
	assert.False(t, m.ProviderUserID.Valid)

	google := domain.User{UserID: "u2", Username: "g", Email: "g@example.com", AuthProvider: domain.ProviderGoogle, ProviderUserID: "sub"}
	m = mapping.ToModelUser(google)

	assert.False(t, m.PasswordHash.Valid)
	assert.Equal(t, google, mapping.ToDomainUser(m))
}

func TestTransactionMapping_KeepsInvalidAmount(t *testing.T) {
	d := domain.Transaction{TransactionID: "t1", OwnerID: "u1", Category: "Food", Date: "2024-01-01", CreatedAt: time.Unix(10, 0).UTC()}

	m := mapping.ToModelTransaction(d)

	assert.Equal(t, "2024-01-01", m.TxnDate)
	assert.False(t, m.Amount.Valid)
	assert.Equal(t, d, mapping.ToDomainTransaction(m))
}
