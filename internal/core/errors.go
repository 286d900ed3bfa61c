package core

import "errors"

// Orchestration-level failures. The parsers and the formatter never
// return errors; they degrade per their contracts.
var (
	ErrSchemaMissing       = errors.New("no schema found")
	ErrNotEnoughRows       = errors.New("csv needs a header row and at least one data row")
	ErrTooManyRows         = errors.New("csv row count exceeds limit")
	ErrSchemaTooLarge      = errors.New("schema text exceeds size limit")
	ErrFileTooLarge        = errors.New("csv file exceeds size limit")
	ErrSchemaNotFound      = errors.New("saved schema not found")
	ErrPersistenceDisabled = errors.New("no database configured")
)

// MapError converts an internal error to a user-facing message with a
// stable code users can quote to support.
//
//	SCH001-SCH099  schema errors
//	FILE001-FILE099 file errors
//	DB001-DB099    persistence errors
//	CNV001         anything unexpected during assembly
func MapError(err error) string {
	switch {
	case errors.Is(err, ErrSchemaMissing):
		return "SCH001: No schema found. Paste a CREATE TABLE statement before converting."
	case errors.Is(err, ErrSchemaTooLarge):
		return "SCH002: The schema text exceeds the configured size limit."
	case errors.Is(err, ErrSchemaNotFound):
		return "SCH003: No saved schema with that name."
	case errors.Is(err, ErrNotEnoughRows):
		return "FILE001: The CSV needs a header row and at least one data row."
	case errors.Is(err, ErrFileTooLarge):
		return "FILE002: The CSV file exceeds the configured size limit."
	case errors.Is(err, ErrTooManyRows):
		return "FILE003: The CSV has more rows than the configured limit."
	case errors.Is(err, ErrPersistenceDisabled):
		return "DB001: Saved schemas and history need a configured database."
	default:
		return "CNV001: Conversion failed: " + err.Error()
	}
}
