// Package store persists cleaning runs in PostgreSQL.
//
// A run is written in one transaction: the run header, one row per change
// log entry, and the cleaned orders loaded with COPY.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/OrderClean/internal/cleaning"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS cleaning_runs (
	id            UUID PRIMARY KEY,
	source        TEXT NOT NULL,
	processed_at  TIMESTAMPTZ NOT NULL,
	original_rows INTEGER NOT NULL,
	cleaned_rows  INTEGER NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS cleaning_changes (
	run_id      UUID NOT NULL REFERENCES cleaning_runs(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	step        TEXT NOT NULL,
	description TEXT NOT NULL,
	count       INTEGER NOT NULL,
	PRIMARY KEY (run_id, position)
);

CREATE TABLE IF NOT EXISTS cleaned_orders (
	run_id        UUID NOT NULL REFERENCES cleaning_runs(id) ON DELETE CASCADE,
	row_number    INTEGER NOT NULL,
	order_id      TEXT,
	customer_name TEXT,
	email         TEXT,
	phone         TEXT,
	order_date    DATE,
	product_name  TEXT,
	category      TEXT,
	quantity      BIGINT,
	price         NUMERIC(12, 2),
	status        TEXT,
	extra         JSONB,
	PRIMARY KEY (run_id, row_number)
);
`

// Run is a completed cleaning run ready to be stored.
type Run struct {
	ID           uuid.UUID
	Source       string
	ProcessedAt  time.Time
	OriginalRows int
	Changes      []cleaning.Entry
	Cleaned      *orders.Table
}

// RunRecord is a stored run header.
type RunRecord struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	ProcessedAt  time.Time `json:"processed_at"`
	OriginalRows int       `json:"original_rows"`
	CleanedRows  int       `json:"cleaned_rows"`
	Changes      int       `json:"changes"`
}

// Store writes and reads cleaning runs.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a store over an open pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SaveRun stores run atomically.
func (s *Store) SaveRun(ctx context.Context, run *Run) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	id := pgtype.UUID{Bytes: run.ID, Valid: true}

	_, err = tx.Exec(ctx,
		`INSERT INTO cleaning_runs (id, source, processed_at, original_rows, cleaned_rows)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, run.Source, run.ProcessedAt, run.OriginalRows, run.Cleaned.Len(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if err := insertChanges(ctx, tx, id, run.Changes); err != nil {
		return err
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"cleaned_orders"},
		copyColumns,
		pgx.CopyFromRows(orderRows(id, run.Cleaned)),
	)
	if err != nil {
		return fmt.Errorf("copy cleaned orders: %w", err)
	}
	if int(n) != run.Cleaned.Len() {
		return fmt.Errorf("copy cleaned orders: wrote %d of %d rows", n, run.Cleaned.Len())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertChanges(ctx context.Context, db DBTX, id pgtype.UUID, changes []cleaning.Entry) error {
	for i, c := range changes {
		_, err := db.Exec(ctx,
			`INSERT INTO cleaning_changes (run_id, position, step, description, count)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, i+1, string(c.Step), c.Description, c.Count,
		)
		if err != nil {
			return fmt.Errorf("insert change %s: %w", c.Step, err)
		}
	}
	return nil
}

// RecentRuns returns up to limit stored runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	return recentRuns(ctx, s.pool, limit)
}

func recentRuns(ctx context.Context, db DBTX, limit int) ([]RunRecord, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.source, r.processed_at, r.original_rows, r.cleaned_rows,
		        (SELECT COUNT(*) FROM cleaning_changes c WHERE c.run_id = r.id)
		 FROM cleaning_runs r
		 ORDER BY r.processed_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	records := make([]RunRecord, 0)
	for rows.Next() {
		var (
			id          pgtype.UUID
			rec         RunRecord
			processedAt pgtype.Timestamptz
			changes     int64
		)
		if err := rows.Scan(&id, &rec.Source, &processedAt, &rec.OriginalRows, &rec.CleanedRows, &changes); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.ID = uuid.UUID(id.Bytes).String()
		rec.ProcessedAt = processedAt.Time
		rec.Changes = int(changes)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	return records, nil
}
