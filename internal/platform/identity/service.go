// Package identity provides the authenticated user context: account
// registration, login issuing session tokens, and token verification.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"visualnotes/internal/common"
	"visualnotes/internal/platform/models"
	"visualnotes/internal/platform/records/users"
)

// Session is the authenticated user context carried by the client for the
// lifetime of a login. Discarding it is the sign-out.
type Session struct {
	UserID   string
	Username string
	Token    string
}

// Service implements registration and login over the users repository.
type Service struct {
	users         users.Repository
	tokenSecret   []byte
	tokenValidity time.Duration
}

func NewService(repo users.Repository, tokenSecret []byte, tokenValidity time.Duration) *Service {
	return &Service{users: repo, tokenSecret: tokenSecret, tokenValidity: tokenValidity}
}

func validateCredentials(username string, password []byte) error {
	if err := validation.Validate(username, validation.Required, validation.Length(3, 64)); err != nil {
		return fmt.Errorf("username: %w", err)
	}
	if err := validation.Validate(string(password), validation.Required, validation.Length(6, 128)); err != nil {
		return fmt.Errorf("password: %w", err)
	}
	return nil
}

// Register creates a new account. Returns common.ErrUserExists when the
// username is taken.
func (s *Service) Register(ctx context.Context, username string, password []byte) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return common.ErrUserExists
	} else if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a Session with a signed token.
// Wrong username or password both map to common.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, username string, password []byte) (*Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, password); err != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := GenerateToken(u.ID, s.tokenSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &Session{UserID: u.ID, Username: u.Username, Token: token}, nil
}

// CurrentUser returns the user id encoded in a session token.
func (s *Service) CurrentUser(tokenString string) (string, error) {
	userID, err := GetUserIDFromToken(tokenString, s.tokenSecret)
	if err != nil {
		return "", common.ErrInvalidToken
	}
	return userID, nil
}
