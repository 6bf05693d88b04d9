package models

import "github.com/shopspring/decimal"

// Ride categories. CategoryAll is the sentinel that disables the
// category filter on listing queries.
const (
	CategoryAll           = "all"
	CategoryCarpool       = "carpool"
	CategoryDriverBooking = "driver-booking"
)

// Ride is a published ride offer with seats for sale.
type Ride struct {
	ID                string          `json:"id"`
	DriverName        string          `json:"driver_name"`
	DriverPhoto       string          `json:"driver_photo"`
	DriverRating      float64         `json:"driver_rating"`
	From              string          `json:"from"`
	To                string          `json:"to"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	AvailableSeats    int             `json:"available_seats"`
	FarePerSeat       decimal.Decimal `json:"fare_per_seat"`
	CarModel          string          `json:"car_model"`
	CarColor          string          `json:"car_color"`
	Amenities         []string        `json:"amenities"`
	EstimatedDuration string          `json:"estimated_duration"`
	PickupPoints      []string        `json:"pickup_points"`
	Category          string          `json:"category"`
}
