package repomanager

import (
	"path/filepath"

	"github.com/dmitrijs2005/coderefine/internal/filex"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/history"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/users"
)

// File names inside the data directory. users.json and
// analysis_history.json match the original on-disk layout.
const (
	usersFile         = "users.json"
	historyFile       = "analysis_history.json"
	refreshTokensFile = "refresh_tokens.json"
)

// JSONFileManager vends file-backed repositories rooted in one data
// directory.
type JSONFileManager struct {
	users         *users.JSONFileRepository
	history       *history.JSONFileRepository
	refreshTokens *refreshtokens.JSONFileRepository
}

// NewJSONFileManager ensures the data directory exists and builds the three
// file stores inside it.
func NewJSONFileManager(dataDir string) (*JSONFileManager, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, err
	}
	return &JSONFileManager{
		users:         users.NewJSONFileRepository(filepath.Join(dir, usersFile)),
		history:       history.NewJSONFileRepository(filepath.Join(dir, historyFile)),
		refreshTokens: refreshtokens.NewJSONFileRepository(filepath.Join(dir, refreshTokensFile)),
	}, nil
}

func (m *JSONFileManager) Users() users.Repository                 { return m.users }
func (m *JSONFileManager) History() history.Repository             { return m.history }
func (m *JSONFileManager) RefreshTokens() refreshtokens.Repository { return m.refreshTokens }

func (m *JSONFileManager) Close() error { return nil }
