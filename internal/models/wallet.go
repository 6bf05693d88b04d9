package models

import "github.com/shopspring/decimal"

// Wallet is a snapshot of a user's wallet: current balance plus the
// transaction history ordered newest-first.
type Wallet struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}
