package core

// csv.go is a hand-rolled single-pass CSV scanner. It implements
// RFC4180-style quoting ("" escapes a quote inside a quoted field) but
// always trims cells and tolerates malformed input: an unterminated
// quote simply flushes whatever was accumulated at end of input.
//
// Known quirk, kept for compatibility: a single trailing empty cell at
// the end of a row is dropped rather than preserved as an empty string,
// because end-of-line only flushes a pending cell when it trims to
// something non-empty.

import "strings"

// TokenizeCSV splits text into rows of trimmed string cells. Row 0 is
// the header row. It never fails; ragged rows are returned as-is.
func TokenizeCSV(text string) [][]string {
	text = strings.TrimPrefix(text, "\ufeff")

	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	// A comma ends the cell unconditionally, so interior empty cells
	// survive.
	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}

	// A line ending (or EOF) only flushes the pending cell when it is
	// non-empty after trimming, and only keeps rows with at least one
	// cell.
	endRow := func() {
		if v := strings.TrimSpace(cell.String()); v != "" {
			row = append(row, v)
		}
		cell.Reset()
		if len(row) > 0 {
			rows = append(rows, row)
			row = nil
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if !inQuotes {
				inQuotes = true
			} else if i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case c == ',' && !inQuotes:
			endCell()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			cell.WriteByte(c)
		}
	}
	endRow()

	return rows
}
