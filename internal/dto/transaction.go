package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount accepts a JSON number or a numeric string.
type CreateTransactionRequest struct {
	Amount   json.Number `json:"amount" binding:"required" swaggertype:"string" example:"42.50"`
	Category string      `json:"category" binding:"max=64" example:"Groceries"`
	Date     string      `json:"date" binding:"required,isodate" example:"2024-02-14"`
	Notes    string      `json:"notes" binding:"max=500"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	SortBy  string `form:"sortBy"`
	SortDir string `form:"sortDir"`
}

// TransactionResponse defines the data returned for a transaction.
// Amount is null when the stored value is not numeric.
type TransactionResponse struct {
	TransactionID string               `json:"id"`
	Amount        *decimal.Decimal     `json:"amount"`
	Category      string               `json:"category"`
	Date          string               `json:"date"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"createdAt"`
	Style         domain.CategoryStyle `json:"style"`
}

// ListTransactionsResponse wraps a sorted list of transactions.
type ListTransactionsResponse struct {
	SortBy       analytics.SortKey       `json:"sortBy"`
	SortDir      analytics.SortDirection `json:"sortDir"`
	Transactions []TransactionResponse   `json:"transactions"`
}

// DeleteTransactionResponse is returned after a successful delete.
type DeleteTransactionResponse struct {
	OK bool `json:"ok"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		Category:      t.Category,
		Date:          t.Date,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		Style:         analytics.ResolveStyle(t.Category),
	}
	if t.Amount.Valid {
		amount := t.Amount.Decimal
		resp.Amount = &amount
	}
	return resp
}

// ToListTransactionsResponse converts sorted transactions to ListTransactionsResponse DTO
func ToListTransactionsResponse(txns []domain.Transaction, key analytics.SortKey, dir analytics.SortDirection) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{
		SortBy:       key,
		SortDir:      dir,
		Transactions: out,
	}
}
