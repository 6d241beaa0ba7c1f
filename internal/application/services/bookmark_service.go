package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
)

// BookmarkService handles favorite toggling and listing
type BookmarkService struct {
	bookmarks repositories.BookmarkRepository
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(bookmarks repositories.BookmarkRepository) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

// Toggle flips the bookmark state for the session's user and reports
// which way it went.
func (s *BookmarkService) Toggle(ctx context.Context, session *Session, businessID string) (entities.BookmarkAction, error) {
	if err := requireSession(session); err != nil {
		return "", err
	}

	action, err := s.bookmarks.Toggle(ctx, session.UserID, businessID)
	if err != nil {
		return "", err
	}

	log.Info().
		Str("business_id", businessID).
		Str("user_id", session.UserID).
		Str("action", string(action)).
		Msg("bookmark toggled")
	return action, nil
}

// List retrieves the session user's bookmarked businesses, newest first
func (s *BookmarkService) List(ctx context.Context, session *Session) ([]*entities.Business, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	return s.bookmarks.ListBusinesses(ctx, session.UserID)
}
