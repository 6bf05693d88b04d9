package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
	"github.com/rideloop/ride-wallet/internal/repositories"
)

var (
	// ErrInvalidAmount is returned when a credit or debit amount is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientFunds is returned when a debit exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// creditDescription is the fixed description for wallet top-ups.
const creditDescription = "Added money to wallet"

// WalletStore defines the ledger state operations used by the service.
type WalletStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (models.Wallet, error)                              // Returns a wallet snapshot
	SaveCredit(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Wallet, error)       // Applies a credit transaction
	SaveDebit(ctx context.Context, userID uuid.UUID, txn models.Transaction) (models.Wallet, error)        // Applies a debit transaction
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WalletService maintains the wallet ledger and publishes applied
// transactions to Kafka.
type WalletService struct {
	store       WalletStore
	kafkaWriter KafkaWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(store WalletStore, kafkaWriter KafkaWriter) *WalletService {
	return &WalletService{
		store:       store,
		kafkaWriter: kafkaWriter,
	}
}

// walletEvent is the Kafka payload for an applied ledger transaction.
type walletEvent struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Timestamp     int64  `json:"timestamp"`
}

// publishTransaction publishes an applied transaction to Kafka.
func (s *WalletService) publishTransaction(ctx context.Context, userID uuid.UUID, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	event := walletEvent{
		TransactionID: txn.ID,
		UserID:        userID.String(),
		Type:          txn.Type,
		Amount:        txn.Amount.String(),
		Description:   txn.Description,
		Date:          txn.Date,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.ID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount)
	}
}

// newTransaction builds a completed ledger entry dated today.
func newTransaction(txnType string, amount decimal.Decimal, description string) models.Transaction {
	return models.Transaction{
		ID:          uuid.NewString(),
		Type:        txnType,
		Amount:      amount,
		Description: description,
		Date:        time.Now().Format("2006-01-02"),
		Status:      models.TransactionCompleted,
	}
}

// Credit adds money to the user's wallet and records the transaction.
func (s *WalletService) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (models.Wallet, error) {
	if !amount.IsPositive() {
		logger.Log.Warnw("invalid credit amount", "user_id", userID, "amount", amount)
		return models.Wallet{}, ErrInvalidAmount
	}

	txn := newTransaction(models.TransactionCredit, amount, creditDescription)

	wallet, err := s.store.SaveCredit(ctx, userID, txn)
	if err != nil {
		logger.Log.Errorw("failed to save credit", "user_id", userID, "amount", amount, "error", err)
		return models.Wallet{}, err
	}

	s.publishTransaction(ctx, userID, txn)

	return wallet, nil
}

// Debit removes money from the user's wallet and records the transaction.
// A debit that exceeds the balance changes nothing and returns
// ErrInsufficientFunds.
func (s *WalletService) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (models.Wallet, error) {
	if !amount.IsPositive() {
		logger.Log.Warnw("invalid debit amount", "user_id", userID, "amount", amount)
		return models.Wallet{}, ErrInvalidAmount
	}

	txn := newTransaction(models.TransactionDebit, amount, description)

	wallet, err := s.store.SaveDebit(ctx, userID, txn)
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientFunds) {
			logger.Log.Warnw("debit exceeds balance", "user_id", userID, "amount", amount, "balance", wallet.Balance)
			return wallet, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to save debit", "user_id", userID, "amount", amount, "error", err)
		return models.Wallet{}, err
	}

	s.publishTransaction(ctx, userID, txn)

	return wallet, nil
}

// Wallet returns the current balance and transaction history.
func (s *WalletService) Wallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	wallet, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "user_id", userID, "error", err)
		return models.Wallet{}, err
	}
	return wallet, nil
}
