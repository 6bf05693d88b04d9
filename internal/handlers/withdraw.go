package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/jwt"
	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
	"github.com/rideloop/ride-wallet/internal/services"
)

// WithdrawTokener extracts and parses the bearer token from the request.
type WithdrawTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Withdrawer defines the interface that the wallet service must implement.
type Withdrawer interface {
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (models.Wallet, error)
}

// WithdrawRequest represents the JSON body for a wallet withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to deduct
	// required: true
	// default: 25.00
	Amount decimal.Decimal `json:"amount"`

	// Transaction description
	// default: Ride payment - Downtown to Airport
	Description string `json:"description"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Confirmation message
	// default: Amount deducted successfully
	Message string `json:"message"`

	// Updated balance
	// default: 225.00
	Balance decimal.Decimal `json:"balance"`

	// Created transaction
	Transaction models.Transaction `json:"transaction"`
}

// WithdrawErrorResponse represents an error response for withdraw
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewWithdrawHandler returns an HTTP handler that debits the wallet.
// @Summary Withdraw from wallet
// @Description Deduct money from the authenticated user's wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawRequest body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Amount deducted successfully"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.WithdrawErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.WithdrawErrorResponse "Insufficient funds"
// @Failure 500 {object} handlers.WithdrawErrorResponse "Internal server error"
// @Router /wallet/withdraw [post]
func NewWithdrawHandler(tokener WithdrawTokener, svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		wallet, err := svc.Debit(r.Context(), claims.UserID, req.Amount, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{
					Error: "Invalid amount",
				})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{
					Error: "Insufficient funds",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{
			Message:     "Amount deducted successfully",
			Balance:     wallet.Balance,
			Transaction: wallet.Transactions[0],
		})
	}
}
