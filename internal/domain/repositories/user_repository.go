package repositories

import (
	"context"

	"github.com/bytesized/business-boost/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user. A duplicate username fails with a
	// conflict error and persists nothing.
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByUsername retrieves a user by exact (case-sensitive) username
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

// ReviewRepository defines the interface for review operations. Reviews
// are insert-only; there is no update or delete path.
type ReviewRepository interface {
	// Create inserts a review and updates the parent business's rating
	// and review_count in the same transaction.
	Create(ctx context.Context, review *entities.Review) error

	// ListByUser retrieves a user's reviews joined with business names,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]*entities.UserReview, error)

	// ListByBusiness retrieves the reviews of a business, newest first
	ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error)
}

// BookmarkRepository defines the interface for bookmark operations
type BookmarkRepository interface {
	// Toggle adds the bookmark when absent and removes it when present,
	// atomically, reporting which happened.
	Toggle(ctx context.Context, userID, businessID string) (entities.BookmarkAction, error)

	// ListBusinesses retrieves the businesses a user bookmarked, newest
	// bookmark first.
	ListBusinesses(ctx context.Context, userID string) ([]*entities.Business, error)
}
