package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/rideloop/ride-wallet/internal/models"
)

// Demo datasets used by the in-memory repositories. They stand in for a
// real backend so the service can run without Postgres.

func seedWallet() *models.Wallet {
	return &models.Wallet{
		Balance: decimal.RequireFromString("250.00"),
		Transactions: []models.Transaction{
			{
				ID:          "1",
				Type:        models.TransactionCredit,
				Amount:      decimal.RequireFromString("100.00"),
				Description: "Added money to wallet",
				Date:        "2024-01-15",
				Status:      models.TransactionCompleted,
			},
			{
				ID:          "2",
				Type:        models.TransactionDebit,
				Amount:      decimal.RequireFromString("25.00"),
				Description: "Ride payment - Downtown to Airport",
				Date:        "2024-01-14",
				Status:      models.TransactionCompleted,
			},
			{
				ID:          "3",
				Type:        models.TransactionCredit,
				Amount:      decimal.RequireFromString("175.00"),
				Description: "Ride earnings - City Center",
				Date:        "2024-01-13",
				Status:      models.TransactionCompleted,
			},
		},
	}
}

func seedDrivers() []models.Driver {
	return []models.Driver{
		{
			ID:             "1",
			Name:           "James Wilson",
			Rating:         4.9,
			TotalRides:     1247,
			Experience:     "5+ years",
			Languages:      []string{"English", "Spanish"},
			Photo:          "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=400",
			Verified:       true,
			HourlyRate:     decimal.NewFromInt(25),
			CarTypes:       []string{"Sedan", "SUV", "Luxury"},
			Availability:   true,
			Specialties:    []string{"Airport Transfers", "Business Trips", "Long Distance"},
			ResponseTime:   "< 2 min",
			CompletionRate: 99,
		},
		{
			ID:             "2",
			Name:           "Maria Garcia",
			Rating:         4.8,
			TotalRides:     892,
			Experience:     "3+ years",
			Languages:      []string{"English", "French", "Portuguese"},
			Photo:          "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400",
			Verified:       true,
			HourlyRate:     decimal.NewFromInt(22),
			CarTypes:       []string{"Sedan", "Compact"},
			Availability:   true,
			Specialties:    []string{"City Tours", "Shopping Trips", "Medical Appointments"},
			ResponseTime:   "< 3 min",
			CompletionRate: 98,
		},
		{
			ID:             "3",
			Name:           "David Kim",
			Rating:         4.7,
			TotalRides:     654,
			Experience:     "2+ years",
			Languages:      []string{"English", "Korean", "Mandarin"},
			Photo:          "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=400",
			Verified:       true,
			HourlyRate:     decimal.NewFromInt(20),
			CarTypes:       []string{"Sedan", "SUV"},
			Availability:   false,
			Specialties:    []string{"Tech Events", "Corporate Meetings", "Night Shifts"},
			ResponseTime:   "< 5 min",
			CompletionRate: 97,
		},
	}
}

func seedRides() []models.Ride {
	return []models.Ride{
		{
			ID:                "1",
			DriverName:        "Sarah Johnson",
			DriverPhoto:       "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400",
			DriverRating:      4.8,
			From:              "Downtown",
			To:                "Airport",
			Date:              "2024-01-20",
			Time:              "10:30",
			AvailableSeats:    3,
			FarePerSeat:       decimal.NewFromInt(15),
			CarModel:          "Toyota Camry",
			CarColor:          "Blue",
			Amenities:         []string{"ac", "music", "charging"},
			EstimatedDuration: "45 min",
			PickupPoints:      []string{"City Center", "Mall Plaza"},
			Category:          models.CategoryCarpool,
		},
		{
			ID:                "2",
			DriverName:        "Michael Chen",
			DriverPhoto:       "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=400",
			DriverRating:      4.9,
			From:              "University District",
			To:                "Business District",
			Date:              "2024-01-20",
			Time:              "08:15",
			AvailableSeats:    2,
			FarePerSeat:       decimal.NewFromInt(12),
			CarModel:          "Honda Civic",
			CarColor:          "White",
			Amenities:         []string{"ac", "wifi", "water"},
			EstimatedDuration: "35 min",
			PickupPoints:      []string{"Campus Gate", "Library"},
			Category:          models.CategoryCarpool,
		},
		{
			ID:                "3",
			DriverName:        "Emily Rodriguez",
			DriverPhoto:       "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=400",
			DriverRating:      4.7,
			From:              "Suburb Heights",
			To:                "City Center",
			Date:              "2024-01-21",
			Time:              "07:45",
			AvailableSeats:    4,
			FarePerSeat:       decimal.NewFromInt(18),
			CarModel:          "BMW X3",
			CarColor:          "Black",
			Amenities:         []string{"ac", "music", "charging", "snacks"},
			EstimatedDuration: "55 min",
			PickupPoints:      []string{"Metro Station", "Shopping Center"},
			Category:          models.CategoryCarpool,
		},
	}
}
