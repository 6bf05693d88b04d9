package models

import "github.com/shopspring/decimal"

// Transaction types
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction statuses
const (
	TransactionCompleted = "completed"
	TransactionPending   = "pending"
	TransactionFailed    = "failed"
)

// Transaction represents a single immutable wallet ledger entry.
type Transaction struct {
	ID          string          `json:"id"`          // Unique transaction identifier
	Type        string          `json:"type"`        // "credit" or "debit"
	Amount      decimal.Decimal `json:"amount"`      // Non-negative monetary amount
	Description string          `json:"description"` // Free-text description
	Date        string          `json:"date"`        // Calendar date, ISO format (YYYY-MM-DD)
	Status      string          `json:"status"`      // "completed", "pending" or "failed"
}
