package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

const minPasswordLength = 6

// AuthService handles user registration and credential checks
type AuthService struct {
	users repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates the input, hashes the password, and creates the
// user. A duplicate username surfaces as a conflict error.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirm string) (*entities.User, error) {
	if username == "" || email == "" || password == "" || confirm == "" {
		return nil, apperrors.NewValidationError("all fields are required")
	}
	if password != confirm {
		return nil, apperrors.NewValidationError("passwords do not match")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 6 characters")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, apperrors.NewValidationError("please enter a valid email address")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("username", username).Msg("user registered")
	return user, nil
}

// Login checks the credentials and opens a session. Unknown usernames
// and wrong passwords fail identically so callers cannot probe for
// registered accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("please enter username and password")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	log.Info().Str("username", username).Msg("user logged in")
	return NewSession(user), nil
}
