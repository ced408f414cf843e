// Package repomanager selects and wires a storage backend: JSON files in a
// data directory (the default) or PostgreSQL when a DSN is configured. Both
// backends vend the same repository interfaces, so swapping one in is a
// drop-in upgrade for the rest of the server.
package repomanager

import (
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/history"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	History() history.Repository
	RefreshTokens() refreshtokens.Repository
	Close() error
}
