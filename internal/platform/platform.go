// Package platform wires the three backend capabilities the application
// consumes: the structured record store (PostgreSQL), the binary object
// store (S3-compatible), and identity (accounts + session tokens).
package platform

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"visualnotes/internal/config"
	"visualnotes/internal/platform/identity"
	"visualnotes/internal/platform/migrations"
	"visualnotes/internal/platform/records/folders"
	"visualnotes/internal/platform/records/images"
	"visualnotes/internal/platform/records/users"
	"visualnotes/internal/platform/storage"
)

// Platform aggregates the remote capabilities behind one handle.
type Platform struct {
	db *sql.DB

	Folders  folders.Repository
	Images   images.Repository
	Storage  storage.ObjectStore
	Identity *identity.Service
}

// sqlOpen, runMigrationsFn and newObjectStore are package-level seams so
// tests can exercise New without a live database or object storage.
var (
	sqlOpen         = sql.Open
	runMigrationsFn = runMigrations

	newObjectStore = func(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
		return storage.NewS3Store(ctx, cfg)
	}
)

// New opens the record store, applies pending migrations, and builds the
// storage and identity services. The database handle is closed again if any
// later initialization step fails.
func New(ctx context.Context, cfg *config.Config) (*Platform, error) {
	db, err := sqlOpen("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrationsFn(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	objectStore, err := newObjectStore(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return &Platform{
		db:       db,
		Folders:  folders.NewPostgresRepository(db),
		Images:   images.NewPostgresRepository(db),
		Storage:  objectStore,
		Identity: identity.NewService(users.NewPostgresRepository(db), []byte(cfg.TokenSecret), cfg.TokenValidity),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Close releases the underlying database handle.
func (p *Platform) Close() error {
	return p.db.Close()
}
