package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/jwt"
	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// BalanceTokener extracts and parses the bearer token from the request.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BalanceReader defines the interface that the wallet service must implement.
type BalanceReader interface {
	Wallet(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
}

// BalanceResponse represents the current wallet balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Current balance
	// default: 250.00
	Balance decimal.Decimal `json:"balance"`
}

// BalanceErrorResponse represents an error response for balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler that reports the wallet balance.
// @Summary Get wallet balance
// @Description Return the current balance of the authenticated user's wallet
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BalanceResponse "Current balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /balance [get]
func NewBalanceHandler(tokener BalanceTokener, svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		wallet, err := svc.Wallet(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Balance: wallet.Balance,
		})
	}
}
