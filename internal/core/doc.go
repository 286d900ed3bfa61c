// Package core converts a pasted CREATE TABLE schema plus CSV text into
// a batch INSERT statement.
//
// The package is the heart of the tool and has no UI or transport
// dependencies. It is built from three small, stateless pieces that
// compose in sequence:
//
//   - [ParseSchema] extracts a table name and ordered column list from
//     free-form schema text.
//   - [TokenizeCSV] splits CSV text into rows of trimmed string cells.
//   - [FormatValue] maps one CSV cell to a SQL literal for a column's
//     inferred type.
//
// [Convert] wires them together: it matches CSV headers to schema
// columns and assembles the final INSERT INTO ... VALUES ... statement.
// The only mutable state in the pipeline is the [SlugRegistry], which
// deduplicates slug values within a single conversion run.
//
// # Error Handling
//
// The parsers and the formatter never fail; malformed input degrades to
// empty or best-effort results. Hard errors exist only at the
// orchestration level (missing schema, too few CSV rows, size limits)
// and are sentinel errors translated to user-facing messages by
// [MapError].
package core
