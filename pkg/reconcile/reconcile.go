// Package reconcile classifies employee records against the grade-band
// table: a record is an outlier when its total falls outside the closed
// [minimum, maximum] interval of its grade's band. Classification fully
// overwrites previous flags and is idempotent, so it can be re-run after
// every band edit.
package reconcile

import (
	"sort"

	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/records"
)

// Result summarizes one classification pass.
type Result struct {
	Classified    int   `json:"classified"`     // Records examined
	Outliers      int   `json:"outliers"`       // Records flagged
	UnknownGrades []int `json:"unknown_grades"` // Grades with no band in the table, ascending
}

// Classify sets the outlier flag on every record in the set against the
// given band table. A record whose grade has no band keeps a false flag
// (the grade is reported in Result.UnknownGrades so a consumer can warn);
// otherwise outlier = total < minimum || total > maximum, with boundary
// values inside the band. Flags from any earlier pass are overwritten,
// never OR-ed.
func Classify(set *records.Set, table *bands.Table) Result {
	var res Result
	if set == nil || table == nil {
		return res
	}

	unknown := make(map[int]bool)
	for i := range set.Records {
		rec := &set.Records[i]
		res.Classified++

		band, ok := table.Lookup(rec.Grade)
		if !ok {
			rec.IsOutlier = false
			unknown[rec.Grade] = true
			continue
		}

		rec.IsOutlier = !band.Contains(rec.Total)
		if rec.IsOutlier {
			res.Outliers++
		}
	}

	for g := range unknown {
		res.UnknownGrades = append(res.UnknownGrades, g)
	}
	sort.Ints(res.UnknownGrades)
	return res
}
