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

// RideCreateTokener extracts and parses the bearer token from the request.
type RideCreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RidePublisher defines the interface that the listing service must implement.
type RidePublisher interface {
	PublishRide(ctx context.Context, ride models.Ride) (models.Ride, error)
}

// RideProfileReader resolves the publishing user's profile.
type RideProfileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// RideCreateRequest represents the JSON body for publishing a ride offer
// swagger:model RideCreateRequest
type RideCreateRequest struct {
	// Origin
	// required: true
	// default: Downtown
	From string `json:"from"`

	// Destination
	// required: true
	// default: Airport
	To string `json:"to"`

	// Departure date
	// default: 2024-01-20
	Date string `json:"date"`

	// Departure time
	// default: 14:30
	Time string `json:"time"`

	// Seats offered
	// default: 3
	AvailableSeats int `json:"availableSeats"`

	// Fare per seat
	// default: 15.00
	FarePerSeat decimal.Decimal `json:"farePerSeat"`

	// Car model
	// default: Toyota Camry
	CarModel string `json:"carModel"`

	// Car color
	// default: Silver
	CarColor string `json:"carColor"`

	// Amenities
	Amenities []string `json:"amenities"`

	// Estimated trip duration
	// default: 35 min
	EstimatedDuration string `json:"estimatedDuration"`

	// Pickup points
	PickupPoints []string `json:"pickupPoints"`

	// Ride category
	// default: carpool
	Category string `json:"category"`
}

// RideCreateResponse represents a successful ride creation response
// swagger:model RideCreateResponse
type RideCreateResponse struct {
	// Published ride
	Ride models.Ride `json:"ride"`
}

// RideCreateErrorResponse represents an error response for ride creation
// swagger:model RideCreateErrorResponse
type RideCreateErrorResponse struct {
	// Error message
	// default: origin and destination are required
	Error string `json:"error"`
}

// NewRideCreateHandler returns an HTTP handler that publishes a ride offer
// on behalf of the authenticated user.
// @Summary Publish a ride
// @Description Publish a ride offer; driver details come from the authenticated user's profile
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rideCreateRequest body handlers.RideCreateRequest true "Ride Create Request"
// @Success 201 {object} handlers.RideCreateResponse "Published ride"
// @Failure 400 {object} handlers.RideCreateErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.RideCreateErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.RideCreateErrorResponse "Internal server error"
// @Router /rides [post]
func NewRideCreateHandler(tokener RideCreateTokener, svc RidePublisher, users RideProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RideCreateErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RideCreateErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req RideCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RideCreateErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.From == "" || req.To == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RideCreateErrorResponse{
				Error: "origin and destination are required",
			})
			return
		}

		user, err := users.Profile(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RideCreateErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		ride, err := svc.PublishRide(r.Context(), models.Ride{
			DriverName:        user.Name,
			DriverPhoto:       user.Avatar,
			DriverRating:      user.Rating,
			From:              req.From,
			To:                req.To,
			Date:              req.Date,
			Time:              req.Time,
			AvailableSeats:    req.AvailableSeats,
			FarePerSeat:       req.FarePerSeat,
			CarModel:          req.CarModel,
			CarColor:          req.CarColor,
			Amenities:         req.Amenities,
			EstimatedDuration: req.EstimatedDuration,
			PickupPoints:      req.PickupPoints,
			Category:          req.Category,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RideCreateErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RideCreateResponse{
			Ride: ride,
		})
	}
}
