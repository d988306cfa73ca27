package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the label used for transactions whose category is blank.
const UncategorizedLabel = "Uncategorized"

// OtherLabel is the label of the synthetic bucket that collects the long tail of categories.
const OtherLabel = "Other"

// Transaction is a single income or expense record owned by one user.
type Transaction struct {
	TransactionID string              `json:"id"`        // Primary Key (UUID), assigned by storage
	OwnerID       string              `json:"ownerID"`   // FK -> users.user_id
	Amount        decimal.NullDecimal `json:"amount"`    // Signed; Valid=false when the stored value is missing or non-numeric
	Category      string              `json:"category"`  // Free-form label, may be blank
	Date          string              `json:"date"`      // YYYY-MM-DD, may fail to parse
	Notes         string              `json:"notes"`     // Optional free text
	CreatedAt     time.Time           `json:"createdAt"` // Insertion-order tiebreak
}

// NewTransaction carries the user-supplied fields of a transaction before storage assigns an ID.
type NewTransaction struct {
	Amount   decimal.Decimal
	Category string
	Date     string
	Notes    string
}
