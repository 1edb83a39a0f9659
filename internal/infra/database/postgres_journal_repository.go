// internal/infra/database/postgres_journal_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"

	"github.com/lib/pq"
)

const journalTable = "notification_journal"

type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the journal table if it does not exist yet.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + pq.QuoteIdentifier(journalTable) + ` (
               id         BIGSERIAL PRIMARY KEY,
               cycle_id   TEXT        NOT NULL,
               kind       TEXT        NOT NULL,
               text       TEXT        NOT NULL,
               delivered  BOOLEAN     NOT NULL,
               error      TEXT        NOT NULL DEFAULT '',
               created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
             )`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error creating %s table: %w", journalTable, err)
	}
	return nil
}

func (r *PostgresJournalRepository) Record(ctx context.Context, entry *notification.Entry) error {
	query := `INSERT INTO ` + pq.QuoteIdentifier(journalTable) + ` (cycle_id, kind, text, delivered, error)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, entry.CycleID, entry.Kind, entry.Text, entry.Delivered, entry.Error).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording notification: %w", err)
	}
	return nil
}
