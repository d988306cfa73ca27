package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactionsByOwner returns every transaction owned by ownerID, newest first.
	ListTransactionsByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. It returns apperrors.ErrNotFound
	// when no transaction with that ID belongs to ownerID.
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
