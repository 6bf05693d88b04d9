package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user account row.
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Unique user identifier
	Username     string    `json:"username" db:"username"`         // Unique login name
	Email        string    `json:"email" db:"email"`               // Unique email address
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	Name         string    `json:"name" db:"name"`                 // Display name
	Phone        string    `json:"phone" db:"phone"`               // Contact phone
	Avatar       string    `json:"avatar" db:"avatar"`             // Avatar image URL
	IsDriver     bool      `json:"is_driver" db:"is_driver"`       // Whether the user offers rides
	IsVerified   bool      `json:"is_verified" db:"is_verified"`   // Identity verification flag
	Rating       float64   `json:"rating" db:"rating"`             // Aggregate rating, 0..5
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Account creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
