package services

import (
	"time"

	"github.com/bytesized/business-boost/internal/domain/entities"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// Session carries the authenticated user through operations that need
// authorization context. It is an explicit value handed to each call,
// not ambient shared state.
type Session struct {
	UserID    string
	Username  string
	Email     string
	StartedAt time.Time
}

// NewSession creates a session for an authenticated user
func NewSession(user *entities.User) *Session {
	return &Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		StartedAt: time.Now(),
	}
}

// requireSession rejects operations invoked without a logged-in user.
func requireSession(session *Session) error {
	if session == nil || session.UserID == "" {
		return apperrors.NewUnauthorizedError("please log in first")
	}
	return nil
}
