package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/logger"
	"github.com/rideloop/ride-wallet/internal/models"
)

// DriverMemoryRepository serves the demo driver collection. The listing
// engine only reads from it, so a copied slice per call is enough.
type DriverMemoryRepository struct {
	drivers []models.Driver
}

func NewDriverMemoryRepository() *DriverMemoryRepository {
	return &DriverMemoryRepository{drivers: seedDrivers()}
}

// List returns all drivers in the reference collection.
func (r *DriverMemoryRepository) List(ctx context.Context) ([]models.Driver, error) {
	drivers := make([]models.Driver, len(r.drivers))
	copy(drivers, r.drivers)
	return drivers, nil
}

// DriverPGRepository reads the driver collection from Postgres.
type DriverPGRepository struct {
	db *sqlx.DB
}

func NewDriverPGRepository(db *sqlx.DB) *DriverPGRepository {
	return &DriverPGRepository{db: db}
}

// driverRow maps a drivers table row. List-valued columns are stored as
// comma-separated text.
type driverRow struct {
	DriverID       string          `db:"driver_id"`
	Name           string          `db:"name"`
	Rating         float64         `db:"rating"`
	TotalRides     int             `db:"total_rides"`
	Experience     string          `db:"experience"`
	Languages      string          `db:"languages"`
	Photo          string          `db:"photo"`
	Verified       bool            `db:"verified"`
	HourlyRate     decimal.Decimal `db:"hourly_rate"`
	CarTypes       string          `db:"car_types"`
	Availability   bool            `db:"availability"`
	Specialties    string          `db:"specialties"`
	ResponseTime   string          `db:"response_time"`
	CompletionRate int             `db:"completion_rate"`
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (row driverRow) toModel() models.Driver {
	return models.Driver{
		ID:             row.DriverID,
		Name:           row.Name,
		Rating:         row.Rating,
		TotalRides:     row.TotalRides,
		Experience:     row.Experience,
		Languages:      splitList(row.Languages),
		Photo:          row.Photo,
		Verified:       row.Verified,
		HourlyRate:     row.HourlyRate,
		CarTypes:       splitList(row.CarTypes),
		Availability:   row.Availability,
		Specialties:    splitList(row.Specialties),
		ResponseTime:   row.ResponseTime,
		CompletionRate: row.CompletionRate,
	}
}

func (r *DriverPGRepository) List(ctx context.Context) ([]models.Driver, error) {
	const query = `
		SELECT driver_id, name, rating, total_rides, experience, languages,
		       photo, verified, hourly_rate, car_types, availability,
		       specialties, response_time, completion_rate
		FROM drivers
		ORDER BY driver_id
	`

	var rows []driverRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	drivers := make([]models.Driver, 0, len(rows))
	for _, row := range rows {
		drivers = append(drivers, row.toModel())
	}
	return drivers, nil
}
