package images

import (
	"context"
	"fmt"

	"visualnotes/internal/common"
	"visualnotes/internal/dbx"
	"visualnotes/internal/platform/models"
)

// PostgresRepository implements image storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, img *models.Image) (*models.Image, error) {
	query := `
		INSERT INTO images (name, file_path, folder_id, user_id, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, file_path, folder_id, user_id, notes, created_at, updated_at
	`
	var stored models.Image
	err := r.db.QueryRowContext(ctx, query,
		img.Name, img.FilePath, img.FolderID, img.UserID, img.Notes,
	).Scan(
		&stored.ID, &stored.Name, &stored.FilePath, &stored.FolderID,
		&stored.UserID, &stored.Notes, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert image: %w", err)
	}
	return &stored, nil
}

func (r *PostgresRepository) SelectByFolder(ctx context.Context, folderID string) ([]*models.Image, error) {
	query := `
		SELECT id, name, file_path, folder_id, user_id, notes, created_at, updated_at FROM images
		WHERE folder_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("select images: %w", err)
	}
	defer rows.Close()

	var result []*models.Image
	for rows.Next() {
		var item models.Image
		if err := rows.Scan(
			&item.ID, &item.Name, &item.FilePath, &item.FolderID,
			&item.UserID, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) CountByFolder(ctx context.Context, folderID string) (int, error) {
	query := `SELECT COUNT(*) FROM images WHERE folder_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, query, folderID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) SelectStorageKeysByFolder(ctx context.Context, folderID string) ([]string, error) {
	query := `SELECT file_path FROM images WHERE folder_id = $1`
	rows, err := r.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("select storage keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *PostgresRepository) UpdateNotes(ctx context.Context, id, userID, notes string) error {
	query := `UPDATE images SET notes = $1, updated_at = now() WHERE id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, notes, id, userID)
	if err != nil {
		return fmt.Errorf("update notes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id, userID string) error {
	query := `DELETE FROM images WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
