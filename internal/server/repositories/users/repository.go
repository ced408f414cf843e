// Package users defines the credential store contract and its file- and
// PostgreSQL-backed implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

// Repository persists registered accounts.
//
// Create fails with common.ErrorAlreadyExists when the username is taken;
// GetByUserName fails with common.ErrorNotFound for unknown usernames.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
}
