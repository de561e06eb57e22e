// Package images provides the PostgreSQL-backed repository for image
// metadata records.
package images

import (
	"context"

	"visualnotes/internal/platform/models"
)

// Repository defines persistence operations on the images collection.
type Repository interface {
	// Insert stores one image row and returns the stored row, including the
	// platform-assigned id and timestamps.
	Insert(ctx context.Context, img *models.Image) (*models.Image, error)

	// SelectByFolder returns all images in folderID, newest first.
	SelectByFolder(ctx context.Context, folderID string) ([]*models.Image, error)

	// CountByFolder returns the number of image rows referencing folderID.
	CountByFolder(ctx context.Context, folderID string) (int, error)

	// SelectStorageKeysByFolder returns the storage keys of every image in
	// folderID. Used to clean binary objects before the folder row delete.
	SelectStorageKeysByFolder(ctx context.Context, folderID string) ([]string, error)

	// UpdateNotes sets the notes field and refreshes updated_at.
	// Returns common.ErrNotFound if no row matched.
	UpdateNotes(ctx context.Context, id, userID, notes string) error

	// DeleteByID removes one image row.
	// Returns common.ErrNotFound if no row matched.
	DeleteByID(ctx context.Context, id, userID string) error
}
