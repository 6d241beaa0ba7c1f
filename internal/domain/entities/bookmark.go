package entities

import (
	"time"
)

// Bookmark marks a business as a favorite of a user. At most one row
// exists per (user, business) pair.
type Bookmark struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	BusinessID string    `json:"business_id" db:"business_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// BookmarkAction reports which way a bookmark toggle went.
type BookmarkAction string

const (
	BookmarkAdded   BookmarkAction = "added"
	BookmarkRemoved BookmarkAction = "removed"
)
