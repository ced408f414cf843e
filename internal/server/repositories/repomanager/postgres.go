package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/coderefine/internal/server/migrations"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/history"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresManager vends PostgreSQL-backed repositories sharing one
// connection pool.
type PostgresManager struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresManager opens the database and runs the embedded goose
// migrations.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		db.Close()
		return nil, fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &PostgresManager{db: db}, nil
}

func (m *PostgresManager) Users() users.Repository { return users.NewPostgresRepository(m.db) }
func (m *PostgresManager) History() history.Repository {
	return history.NewPostgresRepository(m.db)
}
func (m *PostgresManager) RefreshTokens() refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(m.db)
}

func (m *PostgresManager) Close() error { return m.db.Close() }
