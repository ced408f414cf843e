// Package filex provides small filesystem helpers shared by the file-backed
// repositories: directory creation and whole-file JSON load/save.
//
// Load is fail-open: a missing or unreadable file yields the
// zero value of the destination instead of an error, so a fresh installation
// starts from empty collections.
package filex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory (and any parents) if it does not exist yet
// and returns its path.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// LoadJSON reads the file at path and unmarshals it into dst. If the file
// does not exist, cannot be read, or does not contain valid JSON, dst is
// left untouched so the caller proceeds with an empty collection.
func LoadJSON(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

// SaveJSON marshals v and rewrites the file at path wholesale. The write goes
// through a temporary file in the same directory followed by a rename, so a
// crash mid-write cannot leave a half-written collection behind.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
