// Package store persists saved schema texts and conversion history in
// PostgreSQL. It is the server-side counterpart of the browser's
// localStorage convenience: the pasted schema survives across devices,
// and every conversion leaves a small history entry.
package store

import (
	"context"
	"errors"
	"fmt"

	"csv2sql/internal/core"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the pgx-backed implementation of core.Store.
type Store struct {
	db *pgxpool.Pool
}

var _ core.Store = (*Store)(nil)

// New creates a Store on top of an existing connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the metadata tables if they do not exist yet.
// Called once on startup; safe to call repeatedly.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS saved_schemas (
			name       text PRIMARY KEY,
			body       text NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS conversions (
			id             uuid PRIMARY KEY,
			table_name     text NOT NULL,
			row_count      integer NOT NULL,
			column_count   integer NOT NULL,
			statement_size integer NOT NULL,
			created_at     timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS conversions_created_at_idx
			ON conversions (created_at DESC);
	`
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveSchema upserts a named schema text.
func (s *Store) SaveSchema(ctx context.Context, name, body string) error {
	const q = `
		INSERT INTO saved_schemas (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
			SET body = EXCLUDED.body, updated_at = now()
	`
	if _, err := s.db.Exec(ctx, q, name, body); err != nil {
		return fmt.Errorf("save schema %q: %w", name, err)
	}
	return nil
}

// LoadSchema returns the body of a saved schema, or
// core.ErrSchemaNotFound when the name is unknown.
func (s *Store) LoadSchema(ctx context.Context, name string) (string, error) {
	const q = `SELECT body FROM saved_schemas WHERE name = $1`

	var body string
	err := s.db.QueryRow(ctx, q, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", core.ErrSchemaNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load schema %q: %w", name, err)
	}
	return body, nil
}

// RecordConversion inserts one history entry.
func (s *Store) RecordConversion(ctx context.Context, rec core.ConversionRecord) error {
	const q = `
		INSERT INTO conversions (id, table_name, row_count, column_count, statement_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	id := pgtype.UUID{Bytes: rec.ID, Valid: true}
	if _, err := s.db.Exec(ctx, q, id, rec.TableName, rec.RowCount,
		rec.ColumnCount, rec.StatementSize, rec.CreatedAt); err != nil {
		return fmt.Errorf("record conversion: %w", err)
	}
	return nil
}

// RecentConversions returns up to limit history entries, newest first.
func (s *Store) RecentConversions(ctx context.Context, limit int) ([]core.ConversionRecord, error) {
	const q = `
		SELECT id, table_name, row_count, column_count, statement_size, created_at
		FROM conversions
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var recs []core.ConversionRecord
	for rows.Next() {
		var (
			rec core.ConversionRecord
			id  pgtype.UUID
		)
		if err := rows.Scan(&id, &rec.TableName, &rec.RowCount,
			&rec.ColumnCount, &rec.StatementSize, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		rec.ID = uuid.UUID(id.Bytes)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	return recs, nil
}
