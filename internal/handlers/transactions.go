package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rideloop/ride-wallet/internal/jwt"
	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// TransactionsTokener extracts and parses the bearer token from the request.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionsReader defines the interface that the wallet service must implement.
type TransactionsReader interface {
	Wallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
}

// TransactionsResponse represents the wallet transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Transactions, newest first
	Transactions []models.Transaction `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for transactions
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewTransactionsHandler returns an HTTP handler that lists wallet transactions.
// @Summary List wallet transactions
// @Description Return the transaction history of the authenticated user's wallet, newest first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /wallet/transactions [get]
func NewTransactionsHandler(tokener TransactionsTokener, svc TransactionsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		wallet, err := svc.Wallet(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{
			Transactions: wallet.Transactions,
		})
	}
}
