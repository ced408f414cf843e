package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "h1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", now))

	u, err := repo.Create(context.Background(), &models.User{UserName: "alice", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, now, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "h1").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", PasswordHash: "h1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgresRepository_GetByUserName(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, password_hash, created_at FROM users`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("u-1", "alice", "h1", now))

	u, err := repo.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", u.PasswordHash)
}

func TestPostgresRepository_GetByUserName_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, username, password_hash, created_at FROM users`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserName(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
