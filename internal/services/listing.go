package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// Driver sort keys.
const (
	SortByRating     = "rating"     // descending by rating
	SortByPrice      = "price"      // ascending by hourly rate
	SortByExperience = "experience" // descending by total rides
)

// DriverSource provides the read-only driver reference collection.
type DriverSource interface {
	List(ctx context.Context) ([]models.Driver, error)
}

// RideSource provides the ride reference collection and accepts new offers.
type RideSource interface {
	List(ctx context.Context) ([]models.Ride, error)
	GetByID(ctx context.Context, rideID string) (*models.Ride, error)
	Save(ctx context.Context, ride models.Ride) error
}

// DriverQuery holds the filter and sort parameters for a driver listing.
// MinRating 0 disables the rating filter.
type DriverQuery struct {
	MinRating float64
	SortBy    string
}

// RideQuery holds the filter parameters for a ride listing. An empty
// search term matches everything; Category "all" (or empty) disables the
// category filter; FarePerSeat must fall within [MinPrice, MaxPrice].
type RideQuery struct {
	Search   string
	Category string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// ListingService derives filtered and sorted views of the driver and ride
// collections. Derivation is pure: identical inputs and parameters always
// yield the identical sequence, and the sources are never mutated.
type ListingService struct {
	drivers DriverSource
	rides   RideSource
}

// NewListingService creates a new ListingService.
func NewListingService(drivers DriverSource, rides RideSource) *ListingService {
	return &ListingService{
		drivers: drivers,
		rides:   rides,
	}
}

// FilterAndSortDrivers applies the rating filter, then stable-sorts the
// filtered subset by the query's sort key. Unknown sort keys leave the
// filtered order untouched.
func FilterAndSortDrivers(drivers []models.Driver, q DriverQuery) []models.Driver {
	out := make([]models.Driver, 0, len(drivers))
	for _, d := range drivers {
		if q.MinRating == 0 || d.Rating >= q.MinRating {
			out = append(out, d)
		}
	}

	switch q.SortBy {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].HourlyRate.LessThan(out[j].HourlyRate)
		})
	case SortByExperience:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalRides > out[j].TotalRides
		})
	}

	return out
}

// FilterRides keeps rides whose origin or destination contains the search
// term (case-insensitive), whose category matches unless the filter is
// disabled, and whose fare lies within the inclusive price range.
func FilterRides(rides []models.Ride, q RideQuery) []models.Ride {
	term := strings.ToLower(q.Search)

	out := make([]models.Ride, 0, len(rides))
	for _, ride := range rides {
		if term != "" &&
			!strings.Contains(strings.ToLower(ride.From), term) &&
			!strings.Contains(strings.ToLower(ride.To), term) {
			continue
		}
		if q.Category != "" && q.Category != models.CategoryAll && ride.Category != q.Category {
			continue
		}
		if ride.FarePerSeat.LessThan(q.MinPrice) || ride.FarePerSeat.GreaterThan(q.MaxPrice) {
			continue
		}
		out = append(out, ride)
	}

	return out
}

// ListDrivers returns the driver collection filtered and sorted by q.
func (s *ListingService) ListDrivers(ctx context.Context, q DriverQuery) ([]models.Driver, error) {
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list drivers", "error", err)
		return nil, err
	}
	return FilterAndSortDrivers(drivers, q), nil
}

// ListRides returns the ride collection filtered by q.
func (s *ListingService) ListRides(ctx context.Context, q RideQuery) ([]models.Ride, error) {
	rides, err := s.rides.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list rides", "error", err)
		return nil, err
	}
	return FilterRides(rides, q), nil
}

// GetRide returns a single ride by id.
func (s *ListingService) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		logger.Log.Errorw("failed to get ride", "ride_id", rideID, "error", err)
		return nil, err
	}
	return ride, nil
}

// PublishRide stores a new ride offer and returns it with its assigned id.
func (s *ListingService) PublishRide(ctx context.Context, ride models.Ride) (models.Ride, error) {
	if ride.ID == "" {
		ride.ID = uuid.NewString()
	}
	if ride.Category == "" {
		ride.Category = models.CategoryCarpool
	}

	if err := s.rides.Save(ctx, ride); err != nil {
		logger.Log.Errorw("failed to publish ride", "ride_id", ride.ID, "error", err)
		return models.Ride{}, err
	}

	return ride, nil
}
