// Package records holds the normalized employee record set produced by
// ingestion. The set is session-owned and replaced wholesale on each
// successful ingest; there is no incremental merge.
package records

import "sort"

// Record is a single normalized employee compensation record.
// IsOutlier is derived, never authoritative: it is recomputed from the
// grade-band table whenever the table changes.
type Record struct {
	ID          string  `json:"id" yaml:"id"`                             // Employee identifier
	Name        string  `json:"name" yaml:"name"`                         // Employee name
	Grade       int     `json:"grade" yaml:"grade"`                       // Job grade (always > 0 in a working set)
	Total       float64 `json:"total" yaml:"total"`                       // Total compensation
	Designation string  `json:"designation,omitempty" yaml:"designation,omitempty"` // Job title, if the column was present
	Department  string  `json:"department,omitempty" yaml:"department,omitempty"`   // Department, if present
	JoinDate    string  `json:"join_date,omitempty" yaml:"join_date,omitempty"`     // Date of joining, verbatim cell text
	Nationality string  `json:"nationality,omitempty" yaml:"nationality,omitempty"` // Nationality, if present
	Basic       float64 `json:"basic,omitempty" yaml:"basic,omitempty"`   // Basic salary, if present
	IsOutlier   bool    `json:"is_outlier" yaml:"is_outlier"`             // Derived: total outside the grade's band
}

// Set is a collection of normalized records plus knowledge of which
// optional source columns were actually present in the upload. That
// presence drives "N/A"/zero substitution at presentation time.
type Set struct {
	Records []Record

	optional map[string]bool
}

// NewSet builds a set from normalized records and the optional-column
// presence map produced by ingestion.
func NewSet(recs []Record, optional map[string]bool) *Set {
	opt := make(map[string]bool, len(optional))
	for k, v := range optional {
		opt[k] = v
	}
	return &Set{Records: recs, optional: opt}
}

// Len returns the number of records in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// HasOptional reports whether the named optional logical column was
// present in the ingested file.
func (s *Set) HasOptional(column string) bool {
	if s == nil {
		return false
	}
	return s.optional[column]
}

// Grades returns the distinct grades present in the set, ascending.
func (s *Set) Grades() []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range s.Records {
		if !seen[r.Grade] {
			seen[r.Grade] = true
			out = append(out, r.Grade)
		}
	}
	sort.Ints(out)
	return out
}

// ByGrade groups records by grade, preserving input order per grade.
func (s *Set) ByGrade() map[int][]Record {
	out := make(map[int][]Record)
	for _, r := range s.Records {
		out[r.Grade] = append(out[r.Grade], r)
	}
	return out
}

// Partition splits the records of one grade into in-band and outlier
// groups, preserving input order.
func (s *Set) Partition(grade int) (inBand, outliers []Record) {
	for _, r := range s.Records {
		if r.Grade != grade {
			continue
		}
		if r.IsOutlier {
			outliers = append(outliers, r)
		} else {
			inBand = append(inBand, r)
		}
	}
	return inBand, outliers
}

// Outliers returns every record currently flagged as an outlier.
func (s *Set) Outliers() []Record {
	var out []Record
	for _, r := range s.Records {
		if r.IsOutlier {
			out = append(out, r)
		}
	}
	return out
}

// OutlierCount returns the number of records currently flagged.
func (s *Set) OutlierCount() int {
	n := 0
	for _, r := range s.Records {
		if r.IsOutlier {
			n++
		}
	}
	return n
}

// Copy returns an independent copy of the set.
func (s *Set) Copy() *Set {
	if s == nil {
		return nil
	}
	recs := make([]Record, len(s.Records))
	copy(recs, s.Records)
	return NewSet(recs, s.optional)
}
