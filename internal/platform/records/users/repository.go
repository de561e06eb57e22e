// Package users provides the PostgreSQL-backed repository for user accounts.
package users

import (
	"context"

	"visualnotes/internal/platform/models"
)

// Repository defines persistence operations on the users collection.
type Repository interface {
	// Create stores the user row. The caller assigns the id.
	Create(ctx context.Context, u *models.User) error

	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
