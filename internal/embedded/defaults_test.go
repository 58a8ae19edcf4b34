package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBands(t *testing.T) {
	table, err := Bands()
	require.NoError(t, err)

	assert.Equal(t, 12, table.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, table.Grades())

	b, ok := table.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 855.0, b.Minimum)
	assert.Equal(t, 1140.0, b.Midpoint)
	assert.Equal(t, 1425.0, b.Maximum)

	b, ok = table.Lookup(12)
	require.True(t, ok)
	assert.Equal(t, 45000.0, b.Minimum)
	assert.Equal(t, 60000.0, b.Midpoint)
	assert.Equal(t, 75000.0, b.Maximum)
}

func TestBandsInvariants(t *testing.T) {
	table, err := Bands()
	require.NoError(t, err)

	for _, b := range table.Bands() {
		assert.Positive(t, b.Grade)
		assert.LessOrEqual(t, b.Minimum, b.Midpoint, "grade %d", b.Grade)
		assert.LessOrEqual(t, b.Midpoint, b.Maximum, "grade %d", b.Grade)
	}
}

func TestBenchmarks(t *testing.T) {
	seq, maxGrade, err := Benchmarks()
	require.NoError(t, err)

	assert.Equal(t, 12, maxGrade)
	require.Len(t, seq, 12)
	assert.Equal(t, 76200.0, seq[0], "first value belongs to the highest grade")
	assert.Equal(t, 1482.0, seq[11], "last value belongs to grade 1")
}
