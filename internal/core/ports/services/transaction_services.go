package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactions returns the owner's transactions ordered by key and dir.
	ListTransactions(ctx context.Context, ownerID string, key analytics.SortKey, dir analytics.SortDirection) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates and records a new transaction for ownerID.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the owner's transactions.
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
