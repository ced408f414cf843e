// Package refreshtokens defines the session refresh-token store and its
// file- and PostgreSQL-backed implementations.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

// Repository persists issued refresh tokens. Find fails with
// common.ErrorNotFound for unknown tokens; Delete on an unknown token is a
// no-op.
type Repository interface {
	Create(ctx context.Context, userName string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
