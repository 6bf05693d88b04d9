package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
	"github.com/rideloop/ride-wallet/internal/services"
)

// DriverLister defines the interface that the listing service must implement.
type DriverLister interface {
	ListDrivers(ctx context.Context, q services.DriverQuery) ([]models.Driver, error)
}

// DriversResponse represents the filtered driver list
// swagger:model DriversResponse
type DriversResponse struct {
	// Matching drivers
	Drivers []models.Driver `json:"drivers"`
}

// DriversErrorResponse represents an error response for driver listing
// swagger:model DriversErrorResponse
type DriversErrorResponse struct {
	// Error message
	// default: invalid min_rating
	Error string `json:"error"`
}

// NewDriversHandler returns an HTTP handler that lists drivers.
// @Summary List drivers
// @Description Return drivers filtered by minimum rating and sorted by the given key
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param min_rating query number false "Minimum rating, 0 disables the filter"
// @Param sort query string false "Sort key: rating, price or experience"
// @Success 200 {object} handlers.DriversResponse "Matching drivers"
// @Failure 400 {object} handlers.DriversErrorResponse "Invalid query parameter"
// @Failure 401 {object} handlers.DriversErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DriversErrorResponse "Internal server error"
// @Router /drivers [get]
func NewDriversHandler(svc DriverLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := services.DriverQuery{
			SortBy: r.URL.Query().Get("sort"),
		}

		if raw := r.URL.Query().Get("min_rating"); raw != "" {
			minRating, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DriversErrorResponse{
					Error: "invalid min_rating",
				})
				return
			}
			q.MinRating = minRating
		}

		drivers, err := svc.ListDrivers(r.Context(), q)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DriversErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DriversResponse{
			Drivers: drivers,
		})
	}
}
