package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/coderefine/internal/filex"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

// JSONFileRepository keeps all users' histories in one JSON file, a mapping
// of username to ordered entry list. The whole mapping is the unit of
// durability: every append loads it, mutates one user's list, and rewrites
// the file, serialized behind mu.
type JSONFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) load() map[string][]models.HistoryEntry {
	history := map[string][]models.HistoryEntry{}
	filex.LoadJSON(r.path, &history)
	return history
}

func (r *JSONFileRepository) Append(ctx context.Context, userName string, entry models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.load()
	entries := append(history[userName], entry)
	if len(entries) > MaxEntriesPerUser {
		entries = entries[len(entries)-MaxEntriesPerUser:]
	}
	history[userName] = entries

	if err := filex.SaveJSON(r.path, history); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (r *JSONFileRepository) List(ctx context.Context, userName string) ([]models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()[userName], nil
}
