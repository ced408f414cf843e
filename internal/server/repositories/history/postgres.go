package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/coderefine/internal/dbx"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts the entry and evicts everything older than the newest
// MaxEntriesPerUser rows. Both statements run in one transaction so the cap
// holds even when the eviction fails.
func (r *PostgresRepository) Append(ctx context.Context, userName string, entry models.HistoryEntry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		insert :=
			`INSERT INTO analysis_history (username, ts, language, code_snippet, has_errors, analysis_summary)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 `

		if _, err := tx.ExecContext(ctx, insert,
			userName, entry.Timestamp, entry.Language, entry.CodeSnippet,
			entry.HasErrors, entry.AnalysisSummary); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		trim :=
			`DELETE FROM analysis_history
			 WHERE username = $1 AND id NOT IN (
			     SELECT id FROM analysis_history
			     WHERE username = $1
			     ORDER BY id DESC
			     LIMIT $2
			 )
			 `

		if _, err := tx.ExecContext(ctx, trim, userName, MaxEntriesPerUser); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) List(ctx context.Context, userName string) ([]models.HistoryEntry, error) {
	query :=
		`SELECT ts, language, code_snippet, has_errors, analysis_summary
		 FROM analysis_history
		 WHERE username = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.Timestamp, &e.Language, &e.CodeSnippet, &e.HasErrors, &e.AnalysisSummary); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}
