package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
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

func TestPostgresRepository_Append_InsertsAndTrims(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO analysis_history`).
		WithArgs("alice", now, "Go", "package main", true, "## Code Review").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM analysis_history`).
		WithArgs("alice", MaxEntriesPerUser).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), "alice", models.HistoryEntry{
		Timestamp:       now,
		Language:        "Go",
		CodeSnippet:     "package main",
		HasErrors:       true,
		AnalysisSummary: "## Code Review",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Append_RollsBackWhenTrimFails(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO analysis_history`).
		WithArgs("alice", now, "Go", "x", true, "s").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM analysis_history`).
		WithArgs("alice", MaxEntriesPerUser).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Append(context.Background(), "alice", models.HistoryEntry{
		Timestamp:       now,
		Language:        "Go",
		CodeSnippet:     "x",
		HasErrors:       true,
		AnalysisSummary: "s",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT ts, language, code_snippet, has_errors, analysis_summary`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"ts", "language", "code_snippet", "has_errors", "analysis_summary"}).
			AddRow(now.Add(-time.Hour), "Go", "a", true, "s1").
			AddRow(now, "Python", "b", true, "s2"))

	entries, err := repo.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Go", entries[0].Language)
	assert.Equal(t, "Python", entries[1].Language)
}

func TestPostgresRepository_List_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT ts, language, code_snippet, has_errors, analysis_summary`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"ts", "language", "code_snippet", "has_errors", "analysis_summary"}))

	entries, err := repo.List(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
