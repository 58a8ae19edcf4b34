package bands

import (
	"sort"

	"github.com/paylens/paylens/pkg/errors"
)

// Table holds the ordered grade-band definitions for a session. Bands are
// kept sorted ascending by grade; consumers always see ascending order.
// A Table is not safe for concurrent mutation; the owning session
// serializes access.
type Table struct {
	bands []Band
	index map[int]int // grade -> position in bands
}

// NewTable builds a table from the given bands. Grades must be unique and
// every band must satisfy minimum <= midpoint <= maximum.
func NewTable(bs []Band) (*Table, error) {
	t := &Table{
		bands: make([]Band, 0, len(bs)),
		index: make(map[int]int, len(bs)),
	}
	for _, b := range bs {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, exists := t.index[b.Grade]; exists {
			return nil, errors.NewValidationError("grade", b.Grade, "duplicate grade in band table")
		}
		t.bands = append(t.bands, b)
		t.index[b.Grade] = len(t.bands) - 1
	}
	t.sortAscending()
	return t, nil
}

// sortAscending re-sorts the bands by ascending grade and rebuilds the
// grade index. Stable, so equal keys keep their relative order.
func (t *Table) sortAscending() {
	sort.SliceStable(t.bands, func(i, j int) bool {
		return t.bands[i].Grade < t.bands[j].Grade
	})
	for i, b := range t.bands {
		t.index[b.Grade] = i
	}
}

// Lookup returns the band for the given grade by exact key match.
func (t *Table) Lookup(grade int) (Band, bool) {
	i, ok := t.index[grade]
	if !ok {
		return Band{}, false
	}
	return t.bands[i], true
}

// Bands returns the bands in ascending grade order. The returned slice is
// a copy; mutating it does not affect the table.
func (t *Table) Bands() []Band {
	out := make([]Band, len(t.bands))
	copy(out, t.bands)
	return out
}

// Grades returns the ascending sequence of grades present in the table.
func (t *Table) Grades() []int {
	out := make([]int, len(t.bands))
	for i, b := range t.bands {
		out[i] = b.Grade
	}
	return out
}

// Len returns the number of bands in the table.
func (t *Table) Len() int {
	return len(t.bands)
}

// MaxGrade returns the highest grade in the table, or 0 for an empty table.
func (t *Table) MaxGrade() int {
	if len(t.bands) == 0 {
		return 0
	}
	return t.bands[len(t.bands)-1].Grade
}

// Update overwrites the numeric fields of existing bands by grade key.
// Edits for grades not present in the table are silently ignored; no band
// is ever inserted. Edits may arrive in any order. The batch is atomic:
// if any edit violates the band invariants, no edit is applied and the
// table is left untouched.
func (t *Table) Update(edits []Band) error {
	for _, e := range edits {
		if _, ok := t.index[e.Grade]; !ok {
			continue
		}
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for _, e := range edits {
		i, ok := t.index[e.Grade]
		if !ok {
			continue
		}
		t.bands[i].Minimum = e.Minimum
		t.bands[i].Midpoint = e.Midpoint
		t.bands[i].Maximum = e.Maximum
	}
	t.sortAscending()
	return nil
}

// Copy returns an independent copy of the table.
func (t *Table) Copy() *Table {
	c := &Table{
		bands: make([]Band, len(t.bands)),
		index: make(map[int]int, len(t.index)),
	}
	copy(c.bands, t.bands)
	for g, i := range t.index {
		c.index[g] = i
	}
	return c
}
