package folders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"visualnotes/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	q := `(?s)^\s*INSERT\s+INTO\s+folders\s*\(name,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id,\s*name,\s*user_id,\s*created_at,\s*updated_at\s*$`

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "created_at", "updated_at"}).
		AddRow("f1", "Trip", "u1", now, now)
	mock.ExpectQuery(q).WithArgs("Trip", "u1").WillReturnRows(rows)

	got, err := repo.Insert(context.Background(), "Trip", "u1")
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got.ID != "f1" || got.Name != "Trip" || got.UserID != "u1" {
		t.Fatalf("unexpected folder: %+v", got)
	}
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+folders`).
		WithArgs("Trip", "u1").
		WillReturnError(errors.New("db down"))

	if _, err := repo.Insert(context.Background(), "Trip", "u1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSelectAllByUser_OrdersNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	q := `(?s)^\s*SELECT\s+id,\s*name,\s*user_id,\s*created_at,\s*updated_at\s+FROM\s+folders\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "created_at", "updated_at"}).
		AddRow("f2", "Newer", "u1", now, now).
		AddRow("f1", "Older", "u1", now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(q).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.SelectAllByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("SelectAllByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "f2" || got[1].ID != "f1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDeleteByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+folders\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs("missing", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), "missing", "u1")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+folders`).
		WithArgs("f1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByID(context.Background(), "f1", "u1"); err != nil {
		t.Fatalf("DeleteByID error: %v", err)
	}
}
