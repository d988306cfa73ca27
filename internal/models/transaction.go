package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted row of the transactions table. Amount is
// nullable so rows written by older clients with junk amounts still load.
type Transaction struct {
	TransactionID string              `db:"transaction_id"`
	OwnerID       string              `db:"owner_id"`
	Amount        decimal.NullDecimal `db:"amount"`
	Category      string              `db:"category"`
	TxnDate       string              `db:"txn_date"`
	Notes         string              `db:"notes"`
	CreatedAt     time.Time           `db:"created_at"`
}
