package core

import (
	"context"
	"log/slog"
	"time"

	"csv2sql/internal/config"

	"github.com/google/uuid"
)

// ConversionRecord is one entry in the conversion history. The SQL text
// itself is not stored, only its shape.
type ConversionRecord struct {
	ID            uuid.UUID `json:"id"`
	TableName     string    `json:"table"`
	RowCount      int       `json:"rows"`
	ColumnCount   int       `json:"columns"`
	StatementSize int       `json:"statementSize"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Store persists saved schema texts and conversion history. Implemented
// by the postgres store; a nil Store disables persistence.
type Store interface {
	SaveSchema(ctx context.Context, name, body string) error
	LoadSchema(ctx context.Context, name string) (string, error)
	RecordConversion(ctx context.Context, rec ConversionRecord) error
	RecentConversions(ctx context.Context, limit int) ([]ConversionRecord, error)
}

// Service wires the conversion core to configuration limits and the
// optional persistence layer. It is the entry point for all handlers.
type Service struct {
	store Store
	cfg   *config.Config
}

// NewService creates a Service. store may be nil, in which case saved
// schemas and history report ErrPersistenceDisabled.
func NewService(store Store, cfg *config.Config) *Service {
	return &Service{store: store, cfg: cfg}
}

// Convert runs one conversion under the configured limits and records
// it in the history when persistence is available. A history write
// failure is logged, not surfaced; the generated SQL is still good.
func (s *Service) Convert(ctx context.Context, schemaText, csvText string) (Result, error) {
	if len(schemaText) > s.cfg.Convert.MaxSchemaBytes {
		return Result{}, ErrSchemaTooLarge
	}
	if int64(len(csvText)) > s.cfg.Convert.MaxFileBytes {
		return Result{}, ErrFileTooLarge
	}

	result, err := Convert(schemaText, csvText)
	if err != nil {
		return Result{}, err
	}
	if result.RowCount > s.cfg.Convert.MaxRows {
		return Result{}, ErrTooManyRows
	}

	if s.store != nil {
		rec := ConversionRecord{
			ID:            uuid.New(),
			TableName:     result.TableName,
			RowCount:      result.RowCount,
			ColumnCount:   len(result.Columns),
			StatementSize: len(result.SQL),
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.store.RecordConversion(ctx, rec); err != nil {
			slog.Warn("failed to record conversion",
				"table", rec.TableName, "error", err)
		}
	}

	return result, nil
}

// SaveSchema upserts a named schema text.
func (s *Service) SaveSchema(ctx context.Context, name, body string) error {
	if s.store == nil {
		return ErrPersistenceDisabled
	}
	if len(body) > s.cfg.Convert.MaxSchemaBytes {
		return ErrSchemaTooLarge
	}
	return s.store.SaveSchema(ctx, name, body)
}

// LoadSchema returns a previously saved schema text, or
// ErrSchemaNotFound when the name is unknown.
func (s *Service) LoadSchema(ctx context.Context, name string) (string, error) {
	if s.store == nil {
		return "", ErrPersistenceDisabled
	}
	return s.store.LoadSchema(ctx, name)
}

// History returns the most recent conversions, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]ConversionRecord, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.store.RecentConversions(ctx, limit)
}

// Persistent reports whether a database-backed store is configured.
func (s *Service) Persistent() bool {
	return s.store != nil
}
