package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// ReviewService handles review submission and listing
type ReviewService struct {
	reviews repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Add validates and stores a review on behalf of the session's user.
// The repository updates the business aggregate in the same transaction.
func (s *ReviewService) Add(ctx context.Context, session *Session, businessID string, rating int, comment string) (*entities.Review, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("please select a rating between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidationError("please enter a comment")
	}

	review := &entities.Review{
		BusinessID: businessID,
		UserID:     session.UserID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	log.Info().
		Str("business_id", businessID).
		Str("user_id", session.UserID).
		Int("rating", rating).
		Msg("review added")
	return review, nil
}

// ListMine retrieves the session user's reviews, newest first
func (s *ReviewService) ListMine(ctx context.Context, session *Session) ([]*entities.UserReview, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	return s.reviews.ListByUser(ctx, session.UserID)
}
