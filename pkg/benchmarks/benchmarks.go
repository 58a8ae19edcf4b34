// Package benchmarks manages the market-benchmark sequence: one market
// value per grade, stored in descending grade order (index 0 is the
// highest grade). The storage order is a legacy of the original data feed
// and is independent of however many grades a caller currently has, so
// every alignment goes through the explicit transforms in this package.
// Callers must never index the raw sequence directly.
package benchmarks

// Sequence is the raw benchmark array in canonical descending grade order.
type Sequence []float64

// Copy returns an independent copy of the sequence.
func (s Sequence) Copy() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// IndexForGrade returns the position of grade g in a descending sequence
// whose first element belongs to maxGrade. The result may be out of range
// for the sequence; callers clamp via ValueForGrade or AlignToGrades.
func IndexForGrade(g, maxGrade int) int {
	return maxGrade - g
}

// ValueForGrade returns the benchmark value for grade g, or 0 when the
// grade has no corresponding position in the sequence. Out-of-range
// grades degrade to zero rather than erroring: the chart layer needs a
// value for every grade it draws.
func ValueForGrade(seq Sequence, g, maxGrade int) float64 {
	idx := IndexForGrade(g, maxGrade)
	if idx < 0 || idx >= len(seq) {
		return 0
	}
	return seq[idx]
}

// AlignToGrades maps the descending-order sequence onto the given grades,
// which the caller supplies already sorted ascending. The result has one
// value per requested grade and never fails.
func AlignToGrades(seq Sequence, grades []int, maxGrade int) []float64 {
	out := make([]float64, len(grades))
	for i, g := range grades {
		out[i] = ValueForGrade(seq, g, maxGrade)
	}
	return out
}

// ApplyEdits rebuilds the canonical descending sequence from a sparse set
// of per-grade edits keyed by grade (the shape an ascending-order editable
// grid produces). Walking from maxGrade down to 1: an edited grade takes
// the edit value, an unedited grade keeps its existing value at the legacy
// index, and a grade with neither defaults to 0. The input sequence is not
// modified.
func ApplyEdits(edits map[int]float64, seq Sequence, maxGrade int) Sequence {
	out := make(Sequence, 0, maxGrade)
	for g := maxGrade; g >= 1; g-- {
		if v, ok := edits[g]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, ValueForGrade(seq, g, maxGrade))
	}
	return out
}
