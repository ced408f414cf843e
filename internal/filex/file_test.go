package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "data", "coderefine")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "data")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o660))

	_, err := EnsureDir(path)
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestSaveJSON_LoadJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	in := map[string][]string{"alice": {"a", "b"}, "bob": nil}
	require.NoError(t, SaveJSON(path, in))

	out := map[string][]string{}
	LoadJSON(path, &out)
	assert.Equal(t, in["alice"], out["alice"])
	assert.Contains(t, out, "bob")
}

func TestLoadJSON_MissingFileIsEmpty(t *testing.T) {
	out := map[string]string{"keep": "me"}
	LoadJSON(filepath.Join(t.TempDir(), "nope.json"), &out)

	// untouched: fail-open keeps whatever the caller started with
	assert.Equal(t, map[string]string{"keep": "me"}, out)
}

func TestLoadJSON_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o660))

	out := map[string]string{}
	LoadJSON(path, &out)
	assert.Empty(t, out)
}

func TestSaveJSON_RewritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.json")

	require.NoError(t, SaveJSON(path, map[string]int{"a": 1, "b": 2}))
	require.NoError(t, SaveJSON(path, map[string]int{"a": 3}))

	out := map[string]int{}
	LoadJSON(path, &out)
	assert.Equal(t, map[string]int{"a": 3}, out, "previous contents must not survive")
}

func TestSaveJSON_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "h.json")
	require.NoError(t, SaveJSON(path, []int{1, 2, 3}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "h.json", entries[0].Name())
}
