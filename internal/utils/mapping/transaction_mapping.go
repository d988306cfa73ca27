package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		OwnerID:       d.OwnerID,
		Amount:        d.Amount,
		Category:      d.Category,
		TxnDate:       d.Date,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		Amount:        m.Amount,
		Category:      m.Category,
		Date:          m.TxnDate,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
