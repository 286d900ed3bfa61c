package core

// convert.go wires the pipeline together: parse the schema, tokenize
// the CSV, match CSV headers to schema columns, format every cell and
// assemble one batch INSERT statement.

import "strings"

// boundColumn ties one CSV header position to a schema column.
type boundColumn struct {
	Header string     // raw CSV header, used in the column list
	Name   string     // matched schema column name, or the header when unmatched
	Type   ColumnType // inferred type, TypeString when unmatched
}

// Convert turns schema text plus CSV text into a batch INSERT.
//
// Output columns follow the CSV header order, not the schema order.
// One VALUES tuple is emitted per data row; cells missing from a
// ragged row format as NULL.
func Convert(schemaText, csvText string) (Result, error) {
	schema := ParseSchema(schemaText)
	if strings.TrimSpace(schemaText) == "" ||
		(schema.TableName == "" && len(schema.Columns) == 0) {
		return Result{}, ErrSchemaMissing
	}

	rows := TokenizeCSV(csvText)
	if len(rows) < 2 {
		return Result{}, ErrNotEnoughRows
	}

	header := rows[0]
	bound := bindColumns(header, schema.Columns)

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(QuoteIdentifier(schema.TableName))
	b.WriteString(" (")
	for i, col := range bound {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(QuoteIdentifier(col.Header))
	}
	b.WriteString(")\nVALUES\n")

	slugs := make(SlugRegistry)
	for ri, row := range rows[1:] {
		if ri > 0 {
			b.WriteString(",\n")
		}
		b.WriteByte('(')
		for ci, col := range bound {
			if ci > 0 {
				b.WriteString(", ")
			}
			var cell string
			if ci < len(row) {
				cell = row[ci]
			}
			b.WriteString(FormatValue(cell, col.Type, col.Name, slugs))
		}
		b.WriteByte(')')
	}
	b.WriteByte(';')

	columns := make([]string, len(bound))
	for i, col := range bound {
		columns[i] = col.Header
	}

	return Result{
		SQL:       b.String(),
		TableName: schema.TableName,
		Columns:   columns,
		RowCount:  len(rows) - 1,
	}, nil
}

// bindColumns matches each CSV header to a schema column: exact match
// first, then case-insensitive, then a snake_case fold so that
// "Created At" still finds created_at. Unmatched headers are treated
// as plain string columns.
func bindColumns(header []string, columns []ColumnInfo) []boundColumn {
	bound := make([]boundColumn, len(header))
	for i, h := range header {
		if col, ok := findColumn(h, columns); ok {
			bound[i] = boundColumn{Header: h, Name: col.Name, Type: col.Type}
		} else {
			bound[i] = boundColumn{Header: h, Name: h, Type: TypeString}
		}
	}
	return bound
}

func findColumn(header string, columns []ColumnInfo) (ColumnInfo, bool) {
	for _, c := range columns {
		if c.Name == header {
			return c, true
		}
	}
	for _, c := range columns {
		if strings.EqualFold(c.Name, header) {
			return c, true
		}
	}
	folded := foldIdentifier(header)
	for _, c := range columns {
		if foldIdentifier(c.Name) == folded {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// foldIdentifier lowercases s and collapses every run of
// non-alphanumeric characters to a single underscore.
func foldIdentifier(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if underscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			underscore = false
			b.WriteRune(r)
		} else {
			underscore = true
		}
	}
	return b.String()
}
