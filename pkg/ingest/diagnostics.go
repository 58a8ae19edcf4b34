package ingest

// Diagnostics summarizes what an ingest did to the raw table: how many
// rows survived, which were dropped and why, which extraction strategy
// won, and which optional columns the upload actually carried.
type Diagnostics struct {
	OriginalRows  int               `json:"original_rows"`  // Data rows before any filtering
	Kept          int               `json:"kept"`           // Rows in the normalized set
	DroppedGrades int               `json:"dropped_grades"` // Rows dropped for missing or non-positive grade
	DroppedTotals int               `json:"dropped_totals"` // Rows dropped for an unparseable total
	GradeStrategy string            `json:"grade_strategy"` // Winning grade extraction strategy
	Matched       map[string]string `json:"matched"`        // Logical column -> actual header text
	Optional      map[string]bool   `json:"optional"`       // Optional logical column -> present
}
