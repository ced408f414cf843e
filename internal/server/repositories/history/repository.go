// Package history defines the per-user analysis log and its file- and
// PostgreSQL-backed implementations.
package history

import (
	"context"

	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

// MaxEntriesPerUser caps every user's log: appending beyond the cap evicts
// the oldest entries first, ring-buffer style.
const MaxEntriesPerUser = 50

// Repository persists analysis history. Append applies the per-user cap;
// List returns a user's entries in insertion order, oldest first. An unknown
// user simply has an empty history.
type Repository interface {
	Append(ctx context.Context, userName string, entry models.HistoryEntry) error
	List(ctx context.Context, userName string) ([]models.HistoryEntry, error)
}
