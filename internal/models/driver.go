package models

import "github.com/shopspring/decimal"

// Driver is a professional driver available for hourly booking.
// Listing views never mutate drivers, they only derive filtered and
// sorted copies of the reference collection.
type Driver struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Rating         float64         `json:"rating"` // 0..5
	TotalRides     int             `json:"total_rides"`
	Experience     string          `json:"experience"`
	Languages      []string        `json:"languages"`
	Photo          string          `json:"photo"`
	Verified       bool            `json:"verified"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	CarTypes       []string        `json:"car_types"`
	Availability   bool            `json:"availability"`
	Specialties    []string        `json:"specialties"`
	ResponseTime   string          `json:"response_time"`
	CompletionRate int             `json:"completion_rate"`
}
