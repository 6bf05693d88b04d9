package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
	"github.com/rideloop/ride-wallet/internal/services"
)

// defaultMaxPrice caps the price filter when the client does not provide one.
var defaultMaxPrice = decimal.NewFromInt(100)

// RideLister defines the interface that the listing service must implement.
type RideLister interface {
	ListRides(ctx context.Context, q services.RideQuery) ([]models.Ride, error)
}

// RidesResponse represents the filtered ride list
// swagger:model RidesResponse
type RidesResponse struct {
	// Matching rides
	Rides []models.Ride `json:"rides"`
}

// RidesErrorResponse represents an error response for ride listing
// swagger:model RidesErrorResponse
type RidesErrorResponse struct {
	// Error message
	// default: invalid min_price
	Error string `json:"error"`
}

// NewRidesHandler returns an HTTP handler that lists rides.
// @Summary List rides
// @Description Return rides filtered by search text, category and price range
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring matched against origin or destination"
// @Param category query string false "Ride category, 'all' disables the filter" default(all)
// @Param min_price query number false "Minimum fare per seat" default(0)
// @Param max_price query number false "Maximum fare per seat" default(100)
// @Success 200 {object} handlers.RidesResponse "Matching rides"
// @Failure 400 {object} handlers.RidesErrorResponse "Invalid query parameter"
// @Failure 401 {object} handlers.RidesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.RidesErrorResponse "Internal server error"
// @Router /rides [get]
func NewRidesHandler(svc RideLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := services.RideQuery{
			Search:   r.URL.Query().Get("search"),
			Category: r.URL.Query().Get("category"),
			MaxPrice: defaultMaxPrice,
		}
		if q.Category == "" {
			q.Category = models.CategoryAll
		}

		if raw := r.URL.Query().Get("min_price"); raw != "" {
			minPrice, err := decimal.NewFromString(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RidesErrorResponse{
					Error: "invalid min_price",
				})
				return
			}
			q.MinPrice = minPrice
		}

		if raw := r.URL.Query().Get("max_price"); raw != "" {
			maxPrice, err := decimal.NewFromString(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RidesErrorResponse{
					Error: "invalid max_price",
				})
				return
			}
			q.MaxPrice = maxPrice
		}

		rides, err := svc.ListRides(r.Context(), q)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RidesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RidesResponse{
			Rides: rides,
		})
	}
}
