// Package folders provides the PostgreSQL-backed repository for folder
// records.
package folders

import (
	"context"

	"visualnotes/internal/platform/models"
)

// Repository defines persistence operations on the folders collection.
type Repository interface {
	// Insert stores one folder row for userID and returns the stored row,
	// including the platform-assigned id and timestamps.
	Insert(ctx context.Context, name, userID string) (*models.Folder, error)

	// SelectAllByUser returns all folders owned by userID, newest first.
	SelectAllByUser(ctx context.Context, userID string) ([]*models.Folder, error)

	// DeleteByID removes the folder row. Dependent image rows are removed by
	// the database cascade. Returns common.ErrNotFound if no row matched.
	DeleteByID(ctx context.Context, id, userID string) error
}
