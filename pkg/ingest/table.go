package ingest

import "strings"

// Table is the raw tabular input handed to the ingestor: a header row of
// column names plus data rows of cell text. Decoders in internal/sheet
// produce this shape from uploaded spreadsheet files; tests build it
// directly.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable builds a Table from a header row and data rows. Short rows are
// accepted; missing cells read as empty strings.
func NewTable(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Cell returns the cell text at (row, col), or "" when the row is shorter
// than the header.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Column returns the full column of cell text for the given column index.
func (t *Table) Column(col int) []string {
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Cell(i, col)
	}
	return out
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// normalizeHeader canonicalizes a column name for fuzzy matching:
// uppercase with all whitespace removed, so "Emp Id", "EMP ID" and
// "empid" all collide.
func normalizeHeader(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), ""))
}
