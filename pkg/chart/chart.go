// Package chart assembles the reconciled session data into a structured
// dataset ready for a rendering layer: ascending grades, the three band
// series, the grade-aligned market benchmark series, and per-grade
// employee point groups split into in-band and outlier points. This
// package never draws anything; it only guarantees the consumer a
// consistent, already-reconciled view.
package chart

import (
	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/benchmarks"
	"github.com/paylens/paylens/pkg/ingest"
	"github.com/paylens/paylens/pkg/records"
)

// placeholder is substituted for optional text fields whose source column
// was absent from the upload.
const placeholder = "N/A"

// Point is one employee marker on the chart, with the hover detail
// fields the original report exposed. Absent optional columns surface as
// "N/A" (text) or 0 (amounts).
type Point struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	JoinDate    string  `json:"join_date"`
	Nationality string  `json:"nationality"`
	Basic       float64 `json:"basic"`
	Allowance   float64 `json:"allowance"` // total - basic when BASIC was present, else 0
	Total       float64 `json:"total"`
}

// Group holds the employee points of a single grade, partitioned by
// outlier status.
type Group struct {
	Grade    int     `json:"grade"`
	InBand   []Point `json:"in_band"`
	Outliers []Point `json:"outliers"`
}

// Dataset is the full chart-ready view of a session. Series are index
// aligned with Grades (ascending).
type Dataset struct {
	Grades    []int     `json:"grades"`
	Minimums  []float64 `json:"minimums"`
	Midpoints []float64 `json:"midpoints"`
	Maximums  []float64 `json:"maximums"`
	Benchmark []float64 `json:"benchmark"` // Market values aligned to Grades
	Groups    []Group   `json:"groups,omitempty"`
}

// Build assembles a dataset from the current session state. set may be
// nil: the chart then shows only band ranges and market values, exactly
// as before any upload.
func Build(table *bands.Table, seq benchmarks.Sequence, maxGrade int, set *records.Set) *Dataset {
	bs := table.Bands()
	ds := &Dataset{
		Grades:    make([]int, len(bs)),
		Minimums:  make([]float64, len(bs)),
		Midpoints: make([]float64, len(bs)),
		Maximums:  make([]float64, len(bs)),
	}
	for i, b := range bs {
		ds.Grades[i] = b.Grade
		ds.Minimums[i] = b.Minimum
		ds.Midpoints[i] = b.Midpoint
		ds.Maximums[i] = b.Maximum
	}
	ds.Benchmark = benchmarks.AlignToGrades(seq, ds.Grades, maxGrade)

	if set == nil || set.Len() == 0 {
		return ds
	}
	for _, g := range ds.Grades {
		inBand, outliers := set.Partition(g)
		if len(inBand) == 0 && len(outliers) == 0 {
			continue
		}
		group := Group{Grade: g}
		for _, r := range inBand {
			group.InBand = append(group.InBand, point(r, set))
		}
		for _, r := range outliers {
			group.Outliers = append(group.Outliers, point(r, set))
		}
		ds.Groups = append(ds.Groups, group)
	}
	return ds
}

// point converts a record into a chart point, substituting placeholders
// for optional columns the upload did not carry.
func point(r records.Record, set *records.Set) Point {
	p := Point{
		ID:          r.ID,
		Name:        r.Name,
		Designation: placeholder,
		Department:  placeholder,
		JoinDate:    placeholder,
		Nationality: placeholder,
		Total:       r.Total,
	}
	if set.HasOptional(ingest.ColumnDesignation) {
		p.Designation = r.Designation
	}
	if set.HasOptional(ingest.ColumnDepartment) {
		p.Department = r.Department
	}
	if set.HasOptional(ingest.ColumnDOJ) {
		p.JoinDate = r.JoinDate
	}
	if set.HasOptional(ingest.ColumnNationality) {
		p.Nationality = r.Nationality
	}
	if set.HasOptional(ingest.ColumnBasic) {
		p.Basic = r.Basic
		p.Allowance = r.Total - r.Basic
	}
	return p
}
