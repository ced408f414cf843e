package refreshtokens

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/filex"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

// JSONFileRepository keeps issued refresh tokens in one JSON file, a mapping
// of token string to record, with the same single-writer load/rewrite cycle
// as the other file stores.
type JSONFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) load() map[string]models.RefreshToken {
	tokens := map[string]models.RefreshToken{}
	filex.LoadJSON(r.path, &tokens)
	return tokens
}

func (r *JSONFileRepository) Create(ctx context.Context, userName string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens := r.load()
	now := time.Now()
	tokens[token] = models.RefreshToken{
		UserName:  userName,
		Expires:   now.Add(validity),
		CreatedAt: now,
	}

	if err := filex.SaveJSON(r.path, tokens); err != nil {
		return fmt.Errorf("save refresh tokens: %w", err)
	}
	return nil
}

func (r *JSONFileRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.load()[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rec.Token = token
	return &rec, nil
}

func (r *JSONFileRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens := r.load()
	if _, ok := tokens[token]; !ok {
		return nil
	}
	delete(tokens, token)

	if err := filex.SaveJSON(r.path, tokens); err != nil {
		return fmt.Errorf("save refresh tokens: %w", err)
	}
	return nil
}
