package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, owner_id, amount, category, txn_date, notes, created_at
		FROM transactions
		WHERE owner_id = $1
		ORDER BY created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for owner %s: %w", ownerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, owner_id, amount, category, txn_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Amount,
		m.Category,
		m.TxnDate,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`,
		transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
