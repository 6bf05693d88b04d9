package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/jwt"
	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
	"github.com/rideloop/ride-wallet/internal/repositories"
	"github.com/rideloop/ride-wallet/internal/services"
)

// RideBookTokener extracts and parses the bearer token from the request.
type RideBookTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RideGetter defines the interface that the listing service must implement.
type RideGetter interface {
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
}

// RidePayer defines the interface that the wallet service must implement.
type RidePayer interface {
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (models.Wallet, error)
}

// RideBookRequest represents the JSON body for booking seats on a ride
// swagger:model RideBookRequest
type RideBookRequest struct {
	// Seats to book
	// default: 1
	Seats int `json:"seats"`
}

// RideBookResponse represents a successful booking response
// swagger:model RideBookResponse
type RideBookResponse struct {
	// Confirmation message
	// default: Ride booked
	Message string `json:"message"`

	// Total fare charged
	// default: 15.00
	Amount decimal.Decimal `json:"amount"`

	// Updated balance
	// default: 235.00
	Balance decimal.Decimal `json:"balance"`

	// Created transaction
	Transaction models.Transaction `json:"transaction"`
}

// RideBookErrorResponse represents an error response for booking
// swagger:model RideBookErrorResponse
type RideBookErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewRideBookHandler returns an HTTP handler that books seats on a ride and
// charges the fare to the authenticated user's wallet.
// @Summary Book a ride
// @Description Book seats on a ride and pay seats x fare per seat from the wallet
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rideID path string true "Ride ID"
// @Param rideBookRequest body handlers.RideBookRequest true "Ride Book Request"
// @Success 200 {object} handlers.RideBookResponse "Ride booked"
// @Failure 400 {object} handlers.RideBookErrorResponse "Invalid seats"
// @Failure 401 {object} handlers.RideBookErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.RideBookErrorResponse "Insufficient funds"
// @Failure 404 {object} handlers.RideBookErrorResponse "Ride not found"
// @Failure 500 {object} handlers.RideBookErrorResponse "Internal server error"
// @Router /rides/{rideID}/book [post]
func NewRideBookHandler(tokener RideBookTokener, rides RideGetter, wallet RidePayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RideBookErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RideBookErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req RideBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RideBookErrorResponse{
				Error: "invalid request body",
			})
			return
		}
		if req.Seats == 0 {
			req.Seats = 1
		}

		ride, err := rides.GetRide(r.Context(), chi.URLParam(r, "rideID"))
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrRideNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RideBookErrorResponse{
					Error: "Ride not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RideBookErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if req.Seats < 1 || req.Seats > ride.AvailableSeats {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RideBookErrorResponse{
				Error: "Invalid seats",
			})
			return
		}

		amount := ride.FarePerSeat.Mul(decimal.NewFromInt(int64(req.Seats)))
		description := fmt.Sprintf("Ride payment - %s to %s", ride.From, ride.To)

		updated, err := wallet.Debit(r.Context(), claims.UserID, amount, description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(RideBookErrorResponse{
					Error: "Insufficient funds",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RideBookErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RideBookResponse{
			Message:     "Ride booked",
			Amount:      amount,
			Balance:     updated.Balance,
			Transaction: updated.Transactions[0],
		})
	}
}
