package core

// schema.go extracts a table name and column list from free-form
// CREATE TABLE text. This is a tolerant line scanner, not a SQL
// grammar: it understands one level of parentheses, skips anything that
// does not look like "name type" on its own line, and never fails.

import (
	"regexp"
	"strings"
)

var (
	createTableRe = regexp.MustCompile(`(?i)create\s+table`)

	// One column definition line: optional leading whitespace, an
	// optionally quoted identifier, whitespace, then a type token (a
	// run of non-comma, non-whitespace characters).
	columnLineRe = regexp.MustCompile(`^\s*"?([A-Za-z_][A-Za-z0-9_]*)"?\s+([^\s,]+)`)
)

// constraintKeywords are leading words that mark a table-level clause
// rather than a column definition.
var constraintKeywords = map[string]struct{}{
	"primary":    {},
	"foreign":    {},
	"constraint": {},
	"unique":     {},
	"check":      {},
	"exclude":    {},
	"key":        {},
	"index":      {},
	"like":       {},
}

// ParseSchema scans schemaText for CREATE TABLE blocks and returns the
// table name plus the ordered column list. It never fails: unparseable
// input yields an empty SchemaInfo.
//
// With several CREATE TABLE blocks in one paste, the last block's name
// wins but the columns of every block are concatenated in document
// order.
func ParseSchema(schemaText string) SchemaInfo {
	var info SchemaInfo

	segments := createTableRe.Split(schemaText, -1)
	if len(segments) < 2 {
		return info
	}

	// segments[0] is the text before the first CREATE TABLE.
	for _, segment := range segments[1:] {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		if name := parseTableName(segment); name != "" {
			info.TableName = name
		}
		info.Columns = append(info.Columns, parseColumns(segment)...)
	}

	return info
}

// parseTableName returns the first whitespace-delimited token of the
// segment, stripped of a trailing semicolon and surrounding quotes.
func parseTableName(segment string) string {
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return ""
	}
	name := strings.TrimSuffix(fields[0], ";")
	return strings.Trim(name, `"`)
}

// parseColumns scans the text between the first "(" and the last ")"
// of a segment, one clause at a time. Clauses are separated by
// newlines or commas, so both one-line and pretty-printed schemas
// parse. Clauses that do not match the column-definition shape, and
// table-level constraint clauses, are silently skipped. A parenthesized
// precision like numeric(10,2) splits mid-token, but the leading piece
// still carries the type name, and the stray "2)" piece never matches.
func parseColumns(segment string) []ColumnInfo {
	open := strings.Index(segment, "(")
	closing := strings.LastIndex(segment, ")")
	if open < 0 || closing <= open {
		return nil
	}

	var cols []ColumnInfo
	for _, line := range strings.FieldsFunc(segment[open+1:closing], func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		m := columnLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, declared := m[1], m[2]
		if _, ok := constraintKeywords[strings.ToLower(name)]; ok {
			continue
		}
		cols = append(cols, ColumnInfo{
			Name: name,
			Type: InferColumnType(name, declared),
		})
	}
	return cols
}

// numberTypeTokens are substrings of a declared SQL type that classify
// a column as numeric.
var numberTypeTokens = []string{"int", "serial", "decimal", "numeric", "float", "double"}

// typeRule is one classification rule. Inputs arrive lowercased.
type typeRule struct {
	matches func(name, declared string) bool
	typ     ColumnType
}

// typeRules classify a column; the first matching rule wins. Name-based
// rules outrank the declared SQL type, so a column named is_active
// declared as TEXT is still boolean.
var typeRules = []typeRule{
	{func(name, _ string) bool { return strings.HasPrefix(name, "is_") }, TypeBoolean},
	{func(name, _ string) bool { return strings.HasSuffix(name, "_at") }, TypeTimestamp},
	{func(_, declared string) bool { return containsAny(declared, numberTypeTokens) }, TypeNumber},
}

// InferColumnType assigns a type bucket to a column from its name and
// declared SQL type.
func InferColumnType(name, declared string) ColumnType {
	lowerName := strings.ToLower(name)
	lowerDecl := strings.ToLower(declared)
	for _, rule := range typeRules {
		if rule.matches(lowerName, lowerDecl) {
			return rule.typ
		}
	}
	return TypeString
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
