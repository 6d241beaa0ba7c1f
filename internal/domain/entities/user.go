package entities

import (
	"time"
)

// User represents a registered user. PasswordHash holds a one-way bcrypt
// digest; the raw password is never persisted.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Review represents a user review of a business. Reviews are immutable
// once written.
type Review struct {
	ID         string    `json:"id" db:"id"`
	BusinessID string    `json:"business_id" db:"business_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"` // 1-5
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// UserReview is a review joined with the name of the business it belongs
// to, for "my reviews" listings.
type UserReview struct {
	Review
	BusinessName string `json:"business_name" db:"business_name"`
}
