package ingest

// Logical column names. Matching against actual spreadsheet headers is
// case-insensitive and whitespace-insensitive.
const (
	ColumnID    = "EMP ID"
	ColumnName  = "EMP NAME"
	ColumnGrade = "GRADE"
	ColumnTotal = "TOTAL"

	ColumnDesignation = "DESIGNATION"
	ColumnDepartment  = "DEPARTMENT"
	ColumnDOJ         = "DOJ"
	ColumnNationality = "NATIONALITY"
	ColumnBasic       = "BASIC"
)

// RequiredColumns lists the logical columns every upload must provide.
func RequiredColumns() []string {
	return []string{ColumnID, ColumnName, ColumnGrade, ColumnTotal}
}

// OptionalColumns lists the logical columns used only when present.
func OptionalColumns() []string {
	return []string{ColumnDesignation, ColumnDepartment, ColumnDOJ, ColumnNationality, ColumnBasic}
}

// resolveColumns finds the best-matching actual column for each logical
// column using normalized equality. It returns the logical-to-index
// mapping for every match and the list of required logical columns with
// no match at all.
func resolveColumns(t *Table) (matched map[string]int, missing []string) {
	normalized := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		key := normalizeHeader(col)
		if _, taken := normalized[key]; !taken {
			normalized[key] = i
		}
	}

	matched = make(map[string]int)
	for _, logical := range RequiredColumns() {
		if i, ok := normalized[normalizeHeader(logical)]; ok {
			matched[logical] = i
		} else {
			missing = append(missing, logical)
		}
	}
	for _, logical := range OptionalColumns() {
		if i, ok := normalized[normalizeHeader(logical)]; ok {
			matched[logical] = i
		}
	}
	return matched, missing
}
