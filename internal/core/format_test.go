package core

import "testing"

// ----------------------------------------------------------------------------
// FormatValue Tests
// ----------------------------------------------------------------------------

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		typ     ColumnType
		colName string
		want    string
	}{
		// Empty wins over every type.
		{"empty string", "", TypeString, "name", "NULL"},
		{"empty number", "", TypeNumber, "qty", "NULL"},
		{"empty boolean", "", TypeBoolean, "is_active", "NULL"},
		{"empty timestamp", "", TypeTimestamp, "created_at", "NULL"},
		{"whitespace only", "   ", TypeString, "name", "NULL"},

		// NOW() passes through unquoted for any type.
		{"now keyword", "NOW()", TypeTimestamp, "created_at", "NOW()"},
		{"now lowercase", "now()", TypeString, "note", "NOW()"},
		{"now without parens", "now", TypeTimestamp, "created_at", "NOW()"},
		{"now single-quoted", "'NOW()'", TypeTimestamp, "created_at", "NOW()"},
		{"now double-quoted", `"now"`, TypeNumber, "qty", "NOW()"},

		// Boolean bucket.
		{"bool one", "1", TypeBoolean, "is_active", "TRUE"},
		{"bool true", "true", TypeBoolean, "is_active", "TRUE"},
		{"bool yes mixed case", "Yes", TypeBoolean, "is_active", "TRUE"},
		{"bool zero", "0", TypeBoolean, "is_active", "FALSE"},
		{"bool false", "FALSE", TypeBoolean, "is_active", "FALSE"},
		{"bool no", "no", TypeBoolean, "is_active", "FALSE"},
		{"bool garbage defaults to false", "maybe", TypeBoolean, "is_active", "FALSE"},

		// Number bucket: passed through unquoted and unvalidated.
		{"number integer", "42", TypeNumber, "qty", "42"},
		{"number decimal", "3.14", TypeNumber, "price", "3.14"},
		{"number negative", "-7", TypeNumber, "delta", "-7"},
		{"number garbage passes through", "abc", TypeNumber, "qty", "abc"},

		// Timestamp bucket.
		{"timestamp null keyword", "null", TypeTimestamp, "created_at", "NULL"},
		{"timestamp null uppercase", "NULL", TypeTimestamp, "created_at", "NULL"},
		{"timestamp value", "2024-01-15 10:30:00", TypeTimestamp, "created_at", "'2024-01-15 10:30:00'"},

		// String bucket.
		{"plain string", "Alice", TypeString, "name", "'Alice'"},
		{"string with quote doubled", "it's", TypeString, "note", "'it''s'"},
		{"string with commas unescaped", "a,b,c", TypeString, "note", "'a,b,c'"},
		{"string null keyword stays quoted", "null", TypeString, "name", "'null'"},
		{"string with surrounding whitespace", "  Bob  ", TypeString, "name", "'Bob'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slugs := make(SlugRegistry)
			got := FormatValue(tt.raw, tt.typ, tt.colName, slugs)
			if got != tt.want {
				t.Errorf("FormatValue(%q, %v, %q) = %q, want %q",
					tt.raw, tt.typ, tt.colName, got, tt.want)
			}
		})
	}
}

// The slug rule bypasses type dispatch entirely, even for non-string
// columns, and dedupes through the registry.
func TestFormatValueSlugColumn(t *testing.T) {
	slugs := make(SlugRegistry)

	inputs := []string{"Hello World", "hello world", "hello-world"}
	want := []string{"'hello world'", "'hello world-1'", "'hello-world'"}
	for i, in := range inputs {
		if got := FormatValue(in, TypeString, "slug", slugs); got != want[i] {
			t.Errorf("FormatValue(%q) = %q, want %q", in, got, want[i])
		}
	}

	// Slug wins even when the column's inferred type is not string.
	slugs = make(SlugRegistry)
	if got := FormatValue("Foo", TypeNumber, "slug", slugs); got != "'foo'" {
		t.Errorf("slug on number column = %q, want %q", got, "'foo'")
	}
}

// ----------------------------------------------------------------------------
// SlugRegistry Tests
// ----------------------------------------------------------------------------

func TestSlugRegistryUnique(t *testing.T) {
	r := make(SlugRegistry)

	tests := []struct {
		candidate string
		want      string
	}{
		{"x", "x"},
		{"x", "x-1"},
		{"x", "x-2"},
		{"X", "x-3"},   // lowercased before lookup
		{" x ", "x-4"}, // trimmed before lookup
		{"y", "y"},
		{"x", "x-5"}, // counter is monotonic per base slug
	}

	for _, tt := range tests {
		if got := r.Unique(tt.candidate); got != tt.want {
			t.Errorf("Unique(%q) = %q, want %q", tt.candidate, got, tt.want)
		}
	}
}

// ----------------------------------------------------------------------------
// QuoteIdentifier Tests
// ----------------------------------------------------------------------------

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain identifier", "user_id", "user_id"},
		{"reserved word", "order", `"order"`},
		{"reserved word mixed case", "Select", `"Select"`},
		{"reserved word user", "user", `"user"`},
		{"reserved word table", "table", `"table"`},
		{"starts with digit", "1col", `"1col"`},
		{"contains space", "first name", `"first name"`},
		{"contains dash", "first-name", `"first-name"`},
		{"empty", "", `""`},
		{"plain with digits", "col2", "col2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteIdentifier(tt.input); got != tt.want {
				t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
