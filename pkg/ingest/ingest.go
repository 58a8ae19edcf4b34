// Package ingest normalizes heterogeneous spreadsheet input into employee
// records: column discovery under case/space-insensitive matching, grade
// extraction under multiple notations, and currency coercion of salary
// fields. Each processing step is a hard gate: either the whole upload
// becomes a usable record set or the ingest fails with a reportable error
// and no partial result.
package ingest

import (
	"github.com/rs/zerolog"

	"github.com/paylens/paylens/pkg/errors"
	"github.com/paylens/paylens/pkg/logging"
	"github.com/paylens/paylens/pkg/records"
)

// diagnosticSampleSize is how many raw values failure diagnostics carry.
const diagnosticSampleSize = 5

// Ingestor parses raw tabular input into a normalized record set.
type Ingestor struct {
	log *zerolog.Logger
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithLogger sets the logger used for ingest diagnostics.
func WithLogger(log *zerolog.Logger) Option {
	return func(i *Ingestor) {
		i.log = log
	}
}

// New creates an Ingestor.
func New(opts ...Option) *Ingestor {
	i := &Ingestor{log: logging.Default()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Ingest runs the normalization pipeline over the raw table. The gates
// run in order: column resolution, grade extraction, row filtering, total
// coercion. Any gate failure aborts the whole ingest; there is no partial
// success.
func (in *Ingestor) Ingest(t *Table) (*records.Set, *Diagnostics, error) {
	if t == nil || t.Empty() {
		return nil, nil, errors.NewEmptyAfterFilteringError(0)
	}

	matched, missing := resolveColumns(t)
	if len(missing) > 0 {
		in.log.Debug().Strs("missing", missing).Strs("columns", t.Columns).Msg("column resolution failed")
		return nil, nil, errors.NewMissingColumnsError(missing)
	}

	diag := &Diagnostics{
		OriginalRows: len(t.Rows),
		Matched:      make(map[string]string, len(matched)),
		Optional:     make(map[string]bool, len(OptionalColumns())),
	}
	for logical, idx := range matched {
		diag.Matched[logical] = t.Columns[idx]
	}
	for _, logical := range OptionalColumns() {
		_, found := matched[logical]
		diag.Optional[logical] = found
	}

	rawGrades := t.Column(matched[ColumnGrade])
	grades, strategy, ok := extractGrades(rawGrades)
	if !ok {
		return nil, nil, errors.NewUnparseableGradesError(sampleValues(rawGrades, diagnosticSampleSize))
	}
	diag.GradeStrategy = strategy

	// Grade filtering: rows with a missing or non-positive grade leave
	// the working set entirely.
	var keep []int
	for row, g := range grades {
		if g == nil || *g <= 0 {
			diag.DroppedGrades++
			continue
		}
		keep = append(keep, row)
	}
	if len(keep) == 0 {
		return nil, nil, errors.NewEmptyAfterFilteringError(diag.OriginalRows)
	}

	totalCol := matched[ColumnTotal]
	var (
		recs      []records.Record
		rawTotals []string
	)
	for _, row := range keep {
		raw := t.Cell(row, totalCol)
		rawTotals = append(rawTotals, raw)
		total, parsed := coerceAmount(raw)
		if !parsed {
			diag.DroppedTotals++
			continue
		}

		rec := records.Record{
			ID:    t.Cell(row, matched[ColumnID]),
			Name:  t.Cell(row, matched[ColumnName]),
			Grade: *grades[row],
			Total: total,
		}
		if idx, found := matched[ColumnDesignation]; found {
			rec.Designation = t.Cell(row, idx)
		}
		if idx, found := matched[ColumnDepartment]; found {
			rec.Department = t.Cell(row, idx)
		}
		if idx, found := matched[ColumnDOJ]; found {
			rec.JoinDate = t.Cell(row, idx)
		}
		if idx, found := matched[ColumnNationality]; found {
			rec.Nationality = t.Cell(row, idx)
		}
		if idx, found := matched[ColumnBasic]; found {
			if basic, parsedBasic := coerceAmount(t.Cell(row, idx)); parsedBasic {
				rec.Basic = basic
			}
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return nil, nil, errors.NewUnparseableTotalsError(sampleValues(rawTotals, diagnosticSampleSize))
	}
	diag.Kept = len(recs)

	in.log.Debug().
		Int("rows", diag.OriginalRows).
		Int("kept", diag.Kept).
		Int("dropped_grades", diag.DroppedGrades).
		Int("dropped_totals", diag.DroppedTotals).
		Str("grade_strategy", diag.GradeStrategy).
		Msg("ingest complete")

	return records.NewSet(recs, diag.Optional), diag, nil
}
