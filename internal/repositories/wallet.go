package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// ErrInsufficientFunds is returned by SaveDebit when the debit amount
// exceeds the current balance. The wallet is left unchanged.
var ErrInsufficientFunds = errors.New("insufficient funds")

// WalletRepository keeps per-user wallet state in memory. Wallets live for
// the lifetime of the process only; each wallet is seeded with the demo
// balance and history on first access.
type WalletRepository struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]*models.Wallet
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		wallets: make(map[uuid.UUID]*models.Wallet),
	}
}

// wallet returns the mutable wallet state for a user, seeding it on first
// access. Callers must hold r.mu.
func (r *WalletRepository) wallet(userID uuid.UUID) *models.Wallet {
	w, ok := r.wallets[userID]
	if !ok {
		w = seedWallet()
		r.wallets[userID] = w
	}
	return w
}

// snapshot copies the wallet so callers can't mutate stored state.
func snapshot(w *models.Wallet) models.Wallet {
	txns := make([]models.Transaction, len(w.Transactions))
	copy(txns, w.Transactions)
	return models.Wallet{Balance: w.Balance, Transactions: txns}
}

// GetByUserID returns a snapshot of the user's wallet.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := snapshot(r.wallet(userID))

	logger.Log.Infow("wallet read",
		"user_id", userID,
		"balance", w.Balance,
		"transactions", len(w.Transactions),
	)

	return w, nil
}

// SaveCredit increases the balance by txn.Amount and prepends txn to the
// history, newest-first.
func (r *WalletRepository) SaveCredit(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.wallet(userID)
	w.Balance = w.Balance.Add(txn.Amount)
	w.Transactions = append([]models.Transaction{txn}, w.Transactions...)

	logger.Log.Infow("wallet credit applied",
		"user_id", userID,
		"transaction_id", txn.ID,
		"amount", txn.Amount,
		"balance", w.Balance,
	)

	return snapshot(w), nil
}

// SaveDebit decreases the balance by txn.Amount and prepends txn to the
// history. If the balance is smaller than the amount, nothing is applied
// and ErrInsufficientFunds is returned.
func (r *WalletRepository) SaveDebit(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.wallet(userID)
	if w.Balance.LessThan(txn.Amount) {
		logger.Log.Warnw("wallet debit rejected",
			"user_id", userID,
			"amount", txn.Amount,
			"balance", w.Balance,
		)
		return snapshot(w), ErrInsufficientFunds
	}

	w.Balance = w.Balance.Sub(txn.Amount)
	w.Transactions = append([]models.Transaction{txn}, w.Transactions...)

	logger.Log.Infow("wallet debit applied",
		"user_id", userID,
		"transaction_id", txn.ID,
		"amount", txn.Amount,
		"balance", w.Balance,
	)

	return snapshot(w), nil
}
