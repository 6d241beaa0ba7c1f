package repositories

import (
	"context"

	"github.com/bytesized/business-boost/internal/domain/entities"
)

// SortKey selects the ordering of a business listing. Exactly one key is
// active at a time.
type SortKey string

const (
	// SortByName orders by name ascending (the default)
	SortByName SortKey = "name"

	// SortByRating orders by rating descending
	SortByRating SortKey = "rating"

	// SortByReviewCount orders by review count descending
	SortByReviewCount SortKey = "review_count"
)

// BusinessFilter defines the conjunctive filters for listing businesses
type BusinessFilter struct {
	// Category filters by exact match; empty or "all" disables the filter
	Category string

	// SearchTerm matches a case-insensitive substring of name or description
	SearchTerm string

	// MinRating keeps businesses with rating >= MinRating when > 0
	MinRating float64

	// SortBy selects the ordering; empty means SortByName
	SortBy SortKey
}

// BusinessRepository defines the interface for business data operations
type BusinessRepository interface {
	// Create creates a new business
	Create(ctx context.Context, business *entities.Business) error

	// GetByID retrieves a business by ID
	GetByID(ctx context.Context, id string) (*entities.Business, error)

	// List retrieves businesses matching the filter, ordered by the
	// filter's sort key. Returns an empty slice when nothing matches.
	List(ctx context.Context, filter BusinessFilter) ([]*entities.Business, error)

	// EnsureSeedData inserts the sample businesses when the catalog is
	// empty. Reports whether seeding happened.
	EnsureSeedData(ctx context.Context) (bool, error)
}

// StatisticsRepository computes catalog-wide aggregates
type StatisticsRepository interface {
	// Collect gathers all summary statistics in one consistent read
	Collect(ctx context.Context) (*entities.Statistics, error)
}
