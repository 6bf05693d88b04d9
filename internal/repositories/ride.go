package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// ErrRideNotFound is returned when a ride id does not exist.
var ErrRideNotFound = errors.New("ride not found")

// RideMemoryRepository serves and stores ride offers in memory, seeded
// with the demo collection. New offers are prepended so recently posted
// rides come first.
type RideMemoryRepository struct {
	mu    sync.Mutex
	rides []models.Ride
}

func NewRideMemoryRepository() *RideMemoryRepository {
	return &RideMemoryRepository{rides: seedRides()}
}

// List returns all published rides.
func (r *RideMemoryRepository) List(ctx context.Context) ([]models.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rides := make([]models.Ride, len(r.rides))
	copy(rides, r.rides)
	return rides, nil
}

// GetByID returns a single ride by id.
func (r *RideMemoryRepository) GetByID(ctx context.Context, rideID string) (*models.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ride := range r.rides {
		if ride.ID == rideID {
			found := ride
			return &found, nil
		}
	}
	return nil, ErrRideNotFound
}

// Save publishes a new ride offer.
func (r *RideMemoryRepository) Save(ctx context.Context, ride models.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rides = append([]models.Ride{ride}, r.rides...)

	logger.Log.Infow("ride published",
		"ride_id", ride.ID,
		"from", ride.From,
		"to", ride.To,
		"fare_per_seat", ride.FarePerSeat,
	)
	return nil
}

// RidePGRepository reads and writes ride offers in Postgres.
type RidePGRepository struct {
	db *sqlx.DB
}

func NewRidePGRepository(db *sqlx.DB) *RidePGRepository {
	return &RidePGRepository{db: db}
}

type rideRow struct {
	RideID            string          `db:"ride_id"`
	DriverName        string          `db:"driver_name"`
	DriverPhoto       string          `db:"driver_photo"`
	DriverRating      float64         `db:"driver_rating"`
	Origin            string          `db:"origin"`
	Destination       string          `db:"destination"`
	Date              string          `db:"date"`
	Time              string          `db:"time"`
	AvailableSeats    int             `db:"available_seats"`
	FarePerSeat       decimal.Decimal `db:"fare_per_seat"`
	CarModel          string          `db:"car_model"`
	CarColor          string          `db:"car_color"`
	Amenities         string          `db:"amenities"`
	EstimatedDuration string          `db:"estimated_duration"`
	PickupPoints      string          `db:"pickup_points"`
	Category          string          `db:"category"`
}

func (row rideRow) toModel() models.Ride {
	return models.Ride{
		ID:                row.RideID,
		DriverName:        row.DriverName,
		DriverPhoto:       row.DriverPhoto,
		DriverRating:      row.DriverRating,
		From:              row.Origin,
		To:                row.Destination,
		Date:              row.Date,
		Time:              row.Time,
		AvailableSeats:    row.AvailableSeats,
		FarePerSeat:       row.FarePerSeat,
		CarModel:          row.CarModel,
		CarColor:          row.CarColor,
		Amenities:         splitList(row.Amenities),
		EstimatedDuration: row.EstimatedDuration,
		PickupPoints:      splitList(row.PickupPoints),
		Category:          row.Category,
	}
}

const rideColumns = `ride_id, driver_name, driver_photo, driver_rating,
	origin, destination, date, time, available_seats, fare_per_seat,
	car_model, car_color, amenities, estimated_duration, pickup_points,
	category`

func (r *RidePGRepository) List(ctx context.Context) ([]models.Ride, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		ORDER BY date, time
	`

	var rows []rideRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	rides := make([]models.Ride, 0, len(rows))
	for _, row := range rows {
		rides = append(rides, row.toModel())
	}
	return rides, nil
}

func (r *RidePGRepository) GetByID(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE ride_id = $1
	`

	var row rideRow
	err := r.db.GetContext(ctx, &row, query, rideID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rideID},
		"error", err,
	)

	if err != nil {
		return nil, ErrRideNotFound
	}

	ride := row.toModel()
	return &ride, nil
}

func (r *RidePGRepository) Save(ctx context.Context, ride models.Ride) error {
	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	args := []any{
		ride.ID, ride.DriverName, ride.DriverPhoto, ride.DriverRating,
		ride.From, ride.To, ride.Date, ride.Time, ride.AvailableSeats,
		ride.FarePerSeat, ride.CarModel, ride.CarColor,
		strings.Join(ride.Amenities, ","), ride.EstimatedDuration,
		strings.Join(ride.PickupPoints, ","), ride.Category,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
