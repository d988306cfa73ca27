package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	clock   func() time.Time
	newID   func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for CreatedAt.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// WithTransactionIDGenerator overrides how transaction IDs are generated.
func WithTransactionIDGenerator(newID func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = newID
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo: repo,
		clock:   time.Now,
		newID:   uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, key analytics.SortKey, dir analytics.SortDirection) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	s.LogDebug(ctx, "Listing transactions",
		slog.Int("count", len(txns)),
		slog.String("sort_by", string(key)),
		slog.String("sort_dir", string(dir)))
	return analytics.Sort(txns, key, dir), nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	amount := analytics.ParseAmount(req.Amount.String())
	if !amount.Valid {
		return nil, fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, req.Amount.String())
	}
	bounded, ok := analytics.FitAmount(amount.Decimal)
	if !ok {
		return nil, fmt.Errorf("%w: amount %q exceeds %d integer digits or %d decimal places",
			apperrors.ErrValidation, req.Amount.String(), analytics.MaxAmountIntegerDigits, analytics.MaxAmountScale)
	}
	amount = decimal.NewNullDecimal(bounded)

	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse(analytics.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}

	txn := domain.Transaction{
		TransactionID: s.newID(),
		OwnerID:       ownerID,
		Amount:        amount,
		Category:      strings.TrimSpace(req.Category),
		Date:          date,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     s.clock().UTC(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return fmt.Errorf("%w: invalid transaction id %q", apperrors.ErrValidation, transactionID)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
