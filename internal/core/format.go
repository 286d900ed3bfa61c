package core

// format.go maps CSV cell strings to SQL literals. The rules are
// ordered: empty wins over everything, the slug rule wins over NOW(),
// NOW() wins over the type dispatch. Number values pass through
// unvalidated; garbage in a numeric column produces invalid SQL rather
// than an error.

import (
	"fmt"
	"strings"
)

// SlugRegistry tracks slug values handed out during one conversion run.
// It maps a base slug (lowercased, trimmed) to the number of suffixed
// copies issued so far. A registry is created empty per run and never
// shared across runs.
type SlugRegistry map[string]int

// Unique lowercases and trims candidate and returns a value not yet
// issued by this registry. The first occurrence returns the candidate
// unchanged; each later occurrence gets a "-N" suffix with a counter
// that is monotonic per base slug.
func (r SlugRegistry) Unique(candidate string) string {
	slug := strings.ToLower(strings.TrimSpace(candidate))
	n, seen := r[slug]
	if !seen {
		r[slug] = 0
		return slug
	}
	r[slug] = n + 1
	return fmt.Sprintf("%s-%d", slug, n+1)
}

// FormatValue renders one CSV cell as a SQL literal ready to embed in a
// VALUES tuple. columnName is the matched schema column name; a column
// named "slug" is deduplicated through slugs and quoted as a string no
// matter what type the schema declared.
func FormatValue(raw string, typ ColumnType, columnName string, slugs SlugRegistry) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "NULL"
	}

	if columnName == "slug" {
		return quoteString(slugs.Unique(v))
	}

	if isNowKeyword(v) {
		return "NOW()"
	}

	switch typ {
	case TypeBoolean:
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			return "TRUE"
		default:
			// 0/false/no, and silently anything else.
			return "FALSE"
		}
	case TypeNumber:
		// Passed through unquoted and unvalidated.
		return v
	case TypeTimestamp:
		if strings.EqualFold(v, "null") {
			return "NULL"
		}
		return quoteString(v)
	default:
		return quoteString(v)
	}
}

// isNowKeyword reports whether v is NOW() or NOW in any case, with one
// optional layer of surrounding quotes.
func isNowKeyword(v string) bool {
	v = stripSurroundingQuotes(v)
	return strings.EqualFold(v, "now()") || strings.EqualFold(v, "now")
}

// stripSurroundingQuotes removes one layer of matching single or double
// quotes, if present.
func stripSurroundingQuotes(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '\'' || first == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// quoteString single-quotes v with every embedded quote doubled.
func quoteString(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// reservedWords is a fixed set of Postgres-style reserved keywords that
// force identifier quoting. Deliberately static, not sourced from a
// database catalog.
var reservedWords = map[string]struct{}{
	"all": {}, "analyse": {}, "analyze": {}, "and": {}, "any": {},
	"array": {}, "as": {}, "asc": {}, "asymmetric": {}, "both": {},
	"case": {}, "cast": {}, "check": {}, "collate": {}, "column": {},
	"constraint": {}, "create": {}, "current_date": {}, "current_role": {},
	"current_time": {}, "current_timestamp": {}, "current_user": {},
	"default": {}, "deferrable": {}, "desc": {}, "distinct": {}, "do": {},
	"else": {}, "end": {}, "except": {}, "false": {}, "for": {},
	"foreign": {}, "from": {}, "grant": {}, "group": {}, "having": {},
	"in": {}, "initially": {}, "intersect": {}, "into": {}, "leading": {},
	"limit": {}, "localtime": {}, "localtimestamp": {}, "new": {},
	"not": {}, "null": {}, "off": {}, "offset": {}, "old": {}, "on": {},
	"only": {}, "or": {}, "order": {}, "placing": {}, "primary": {},
	"references": {}, "select": {}, "session_user": {}, "some": {},
	"symmetric": {}, "table": {}, "then": {}, "to": {}, "trailing": {},
	"true": {}, "union": {}, "unique": {}, "user": {}, "using": {},
	"when": {}, "where": {},
}

// QuoteIdentifier wraps name in double quotes when it is a reserved
// word, starts with a digit, contains a character outside
// [a-zA-Z0-9_], or is empty. Plain identifiers are returned unchanged.
func QuoteIdentifier(name string) string {
	if identifierNeedsQuoting(name) {
		return `"` + name + `"`
	}
	return name
}

func identifierNeedsQuoting(name string) bool {
	if name == "" {
		return true
	}
	if _, ok := reservedWords[strings.ToLower(name)]; ok {
		return true
	}
	if name[0] >= '0' && name[0] <= '9' {
		return true
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return true
		}
	}
	return false
}
