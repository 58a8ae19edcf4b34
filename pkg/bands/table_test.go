package bands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylens/paylens/pkg/errors"
)

func testBands() []Band {
	return []Band{
		{Grade: 3, Minimum: 2400, Midpoint: 3200, Maximum: 4000},
		{Grade: 1, Minimum: 855, Midpoint: 1140, Maximum: 1425},
		{Grade: 2, Minimum: 1545, Midpoint: 2060, Maximum: 2575},
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []int{1, 2, 3}, table.Grades(), "bands are sorted ascending regardless of input order")
	assert.Equal(t, 3, table.MaxGrade())
}

func TestNewTableRejectsDuplicateGrade(t *testing.T) {
	_, err := NewTable([]Band{
		{Grade: 1, Minimum: 100, Midpoint: 200, Maximum: 300},
		{Grade: 1, Minimum: 150, Midpoint: 250, Maximum: 350},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewTableRejectsInvalidBand(t *testing.T) {
	_, err := NewTable([]Band{
		{Grade: 1, Minimum: 300, Midpoint: 200, Maximum: 100},
	})
	assert.Error(t, err)
}

func TestTableLookup(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	b, ok := table.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 1545.0, b.Minimum)
	assert.Equal(t, 2575.0, b.Maximum)

	_, ok = table.Lookup(99)
	assert.False(t, ok)
}

func TestTableUpdate(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	err = table.Update([]Band{
		{Grade: 2, Minimum: 1600, Midpoint: 2100, Maximum: 2600},
	})
	require.NoError(t, err)

	b, ok := table.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 1600.0, b.Minimum)
	assert.Equal(t, 2100.0, b.Midpoint)
	assert.Equal(t, 2600.0, b.Maximum)

	// Untouched grades keep their values.
	b, ok = table.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 855.0, b.Minimum)
}

func TestTableUpdateIgnoresUnknownGrade(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	err = table.Update([]Band{
		{Grade: 42, Minimum: 1, Midpoint: 2, Maximum: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len(), "unknown grades are never inserted")
	_, ok := table.Lookup(42)
	assert.False(t, ok)
}

func TestTableUpdateAtomicReject(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	err = table.Update([]Band{
		{Grade: 1, Minimum: 900, Midpoint: 1200, Maximum: 1500},
		{Grade: 2, Minimum: 5000, Midpoint: 2000, Maximum: 2600}, // min > mid
	})
	require.Error(t, err)

	// The valid edit in the same batch must not have been applied.
	b, ok := table.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 855.0, b.Minimum, "a rejected batch leaves the table untouched")
}

func TestTableUpdateOutOfOrderEdits(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	err = table.Update([]Band{
		{Grade: 3, Minimum: 2500, Midpoint: 3300, Maximum: 4100},
		{Grade: 1, Minimum: 900, Midpoint: 1200, Maximum: 1500},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, table.Grades(), "order is preserved after sparse edits")
	b, _ := table.Lookup(3)
	assert.Equal(t, 4100.0, b.Maximum)
	b, _ = table.Lookup(1)
	assert.Equal(t, 900.0, b.Minimum)
}

func TestTableBandsReturnsCopy(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	bs := table.Bands()
	bs[0].Minimum = -999

	b, _ := table.Lookup(1)
	assert.Equal(t, 855.0, b.Minimum)
}

func TestTableCopy(t *testing.T) {
	table, err := NewTable(testBands())
	require.NoError(t, err)

	clone := table.Copy()
	require.NoError(t, clone.Update([]Band{
		{Grade: 1, Minimum: 1, Midpoint: 2, Maximum: 3},
	}))

	b, _ := table.Lookup(1)
	assert.Equal(t, 855.0, b.Minimum, "copies do not share band storage")
}
