package users

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *JSONFileRepository {
	t.Helper()
	return NewJSONFileRepository(filepath.Join(t.TempDir(), "users.json"))
}

func TestJSONFileRepository_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, "h1", got.PasswordHash)
	assert.Equal(t, created.ID, got.ID)
}

func TestJSONFileRepository_CreateDuplicateFails(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	// the stored hash from the first registration is unchanged
	got, err := repo.GetByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, got.PasswordHash)
}

func TestJSONFileRepository_GetUnknownUser(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByUserName(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestJSONFileRepository_UsernamesAreCaseSensitive(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "Alice", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "h"})
	require.NoError(t, err, "different case is a different user")

	_, err = repo.GetByUserName(ctx, "ALICE")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestJSONFileRepository_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o660))
	repo := NewJSONFileRepository(path)

	_, err := repo.GetByUserName(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Create(context.Background(), &models.User{UserName: "alice", PasswordHash: "h"})
	assert.NoError(t, err, "fail-open: a corrupt store behaves like an empty one")
}

func TestJSONFileRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	ctx := context.Background()

	_, err := NewJSONFileRepository(path).Create(ctx, &models.User{UserName: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := NewJSONFileRepository(path).GetByUserName(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h", got.PasswordHash)
}
