package entities

import (
	"time"
)

// Business represents a local business in the catalog
type Business struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Address     string    `json:"address" db:"address"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	Description string    `json:"description" db:"description"`
	Rating      float64   `json:"rating" db:"rating"`
	ReviewCount int       `json:"review_count" db:"review_count"`
	Deals       string    `json:"deals,omitempty" db:"deals"`
	Location    Location  `json:"location" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Location represents geographical coordinates. Stored for display only;
// nothing in the catalog computes with them.
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}
