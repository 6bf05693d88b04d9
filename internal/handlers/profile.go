package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rideloop/ride-wallet/internal/jwt"
	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
	"github.com/rideloop/ride-wallet/internal/services"
)

// ProfileTokener extracts and parses the bearer token from the request.
type ProfileTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ProfileReader defines the interface that the auth service must implement.
type ProfileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileResponse represents the authenticated user's profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// User profile
	User models.UserDB `json:"user"`
}

// ProfileErrorResponse represents an error response for profile
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler that reports the user profile.
// @Summary Get user profile
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse "User profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /profile [get]
func NewProfileHandler(tokener ProfileTokener, svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		user, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Unauthorized",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			User: *user,
		})
	}
}
