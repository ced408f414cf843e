package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/filex"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
	"github.com/google/uuid"
)

// JSONFileRepository keeps the whole credential collection in a single JSON
// file, a mapping of username to account record. Every mutation is a full
// load-modify-rewrite cycle serialized behind mu, so concurrent callers
// cannot lose each other's writes.
type JSONFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) load() map[string]models.User {
	users := map[string]models.User{}
	filex.LoadJSON(r.path, &users)
	return users
}

func (r *JSONFileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	if _, ok := users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	users[user.UserName] = *user

	if err := filex.SaveJSON(r.path, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	return user, nil
}

func (r *JSONFileRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	u, ok := users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.UserName = userName
	return &u, nil
}
