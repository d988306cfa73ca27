package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
)

type TransactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT transaction_id, owner_id, amount, category, txn_date, notes, created_at
		FROM transactions
		WHERE owner_id = ?
		ORDER BY created_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var (
			m         models.Transaction
			createdAt int64
		)
		if err := rows.Scan(&m.TransactionID, &m.OwnerID, &m.Amount, &m.Category, &m.TxnDate, &m.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		m.CreatedAt = fromUnixNano(createdAt)
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, owner_id, amount, category, txn_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.TransactionID, m.OwnerID, m.Amount, m.Category, m.TxnDate, m.Notes, toUnixNano(m.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM transactions WHERE transaction_id = ? AND owner_id = ?`,
		transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
