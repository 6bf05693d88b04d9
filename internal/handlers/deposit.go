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

// DepositTokener extracts and parses the bearer token from the request.
type DepositTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Depositer defines the interface that the wallet service must implement.
type Depositer interface {
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (models.Wallet, error)
}

// DepositRequest represents the JSON body for a wallet deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to add
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Confirmation message
	// default: Amount added successfully
	Message string `json:"message"`

	// Updated balance
	// default: 350.00
	Balance decimal.Decimal `json:"balance"`

	// Created transaction
	Transaction models.Transaction `json:"transaction"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler that credits the wallet.
// @Summary Deposit to wallet
// @Description Add money to the authenticated user's wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param depositRequest body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Amount added successfully"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.DepositErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DepositErrorResponse "Internal server error"
// @Router /wallet/deposit [post]
func NewDepositHandler(tokener DepositTokener, svc Depositer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DepositErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DepositErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		wallet, err := svc.Credit(r.Context(), claims.UserID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DepositErrorResponse{
					Error: "Invalid amount",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DepositErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{
			Message:     "Amount added successfully",
			Balance:     wallet.Balance,
			Transaction: wallet.Transactions[0],
		})
	}
}
