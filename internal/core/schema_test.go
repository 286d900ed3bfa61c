package core

import (
	"reflect"
	"testing"
)

// ----------------------------------------------------------------------------
// ParseSchema Tests
// ----------------------------------------------------------------------------

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantCols []ColumnInfo
	}{
		{
			name: "basic multi-line schema",
			input: `CREATE TABLE users (
				id serial,
				is_active boolean,
				name text,
				slug text,
				created_at timestamp
			);`,
			wantName: "users",
			wantCols: []ColumnInfo{
				{Name: "id", Type: TypeNumber},
				{Name: "is_active", Type: TypeBoolean},
				{Name: "name", Type: TypeString},
				{Name: "slug", Type: TypeString},
				{Name: "created_at", Type: TypeTimestamp},
			},
		},
		{
			name:     "single-line schema",
			input:    `CREATE TABLE users (id serial, is_active boolean, name text);`,
			wantName: "users",
			wantCols: []ColumnInfo{
				{Name: "id", Type: TypeNumber},
				{Name: "is_active", Type: TypeBoolean},
				{Name: "name", Type: TypeString},
			},
		},
		{
			name:     "lowercase create table",
			input:    `create table items (sku text, price decimal)`,
			wantName: "items",
			wantCols: []ColumnInfo{
				{Name: "sku", Type: TypeString},
				{Name: "price", Type: TypeNumber},
			},
		},
		{
			name:     "quoted table name with trailing semicolon",
			input:    `CREATE TABLE "Order"; (id int)`,
			wantName: "Order",
			wantCols: []ColumnInfo{{Name: "id", Type: TypeNumber}},
		},
		{
			name: "quoted column identifiers",
			input: `CREATE TABLE t (
				"id" bigint,
				"label" varchar
			)`,
			wantName: "t",
			wantCols: []ColumnInfo{
				{Name: "id", Type: TypeNumber},
				{Name: "label", Type: TypeString},
			},
		},
		{
			name: "constraint clauses skipped",
			input: `CREATE TABLE t (
				id serial,
				name text,
				PRIMARY KEY (id),
				UNIQUE (name),
				CONSTRAINT fk FOREIGN KEY (id) REFERENCES other (id)
			)`,
			wantName: "t",
			wantCols: []ColumnInfo{
				{Name: "id", Type: TypeNumber},
				{Name: "name", Type: TypeString},
			},
		},
		{
			name: "numeric precision with embedded comma",
			input: `CREATE TABLE t (
				price numeric(10,2),
				qty int
			)`,
			wantName: "t",
			wantCols: []ColumnInfo{
				{Name: "price", Type: TypeNumber},
				{Name: "qty", Type: TypeNumber},
			},
		},
		{
			name: "text before first create table is discarded",
			input: `-- schema dump
			some preamble
			CREATE TABLE logs (message text)`,
			wantName: "logs",
			wantCols: []ColumnInfo{{Name: "message", Type: TypeString}},
		},
		{
			name:     "no create table yields empty result",
			input:    `SELECT * FROM users;`,
			wantName: "",
			wantCols: nil,
		},
		{
			name:     "empty input",
			input:    "",
			wantName: "",
			wantCols: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSchema(tt.input)
			if got.TableName != tt.wantName {
				t.Errorf("TableName = %q, want %q", got.TableName, tt.wantName)
			}
			if !reflect.DeepEqual(got.Columns, tt.wantCols) {
				t.Errorf("Columns = %+v, want %+v", got.Columns, tt.wantCols)
			}
		})
	}
}

// Documented behavior, kept for compatibility: with several CREATE
// TABLE blocks the last block's name wins, but the columns of every
// block are concatenated in document order.
func TestParseSchemaMultipleBlocks(t *testing.T) {
	input := `CREATE TABLE first (a int);
CREATE TABLE second (b text);`

	got := ParseSchema(input)

	if got.TableName != "second" {
		t.Errorf("TableName = %q, want %q (last block wins)", got.TableName, "second")
	}
	want := []ColumnInfo{
		{Name: "a", Type: TypeNumber},
		{Name: "b", Type: TypeString},
	}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("Columns = %+v, want %+v (all blocks merge)", got.Columns, want)
	}
}

// ----------------------------------------------------------------------------
// InferColumnType Tests
// ----------------------------------------------------------------------------

func TestInferColumnType(t *testing.T) {
	tests := []struct {
		name     string
		colName  string
		declared string
		want     ColumnType
	}{
		// Name rules win over the declared SQL type.
		{"is_ prefix beats varchar", "is_deleted", "VARCHAR", TypeBoolean},
		{"is_ prefix beats text", "is_active", "TEXT", TypeBoolean},
		{"_at suffix beats int", "created_at", "INT", TypeTimestamp},
		{"_at suffix with timestamp type", "updated_at", "timestamptz", TypeTimestamp},

		// Declared-type rules.
		{"serial", "id", "serial", TypeNumber},
		{"bigint", "count", "BIGINT", TypeNumber},
		{"decimal", "price", "decimal(10,2)", TypeNumber},
		{"numeric", "amount", "NUMERIC", TypeNumber},
		{"float", "ratio", "float8", TypeNumber},
		{"double", "score", "double", TypeNumber},

		// Fallback.
		{"text", "name", "text", TypeString},
		{"boolean type without is_ prefix", "active", "boolean", TypeString},
		{"timestamp type without _at suffix", "expiry", "timestamp", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferColumnType(tt.colName, tt.declared)
			if got != tt.want {
				t.Errorf("InferColumnType(%q, %q) = %v, want %v",
					tt.colName, tt.declared, got, tt.want)
			}
		})
	}
}
