package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/benchmarks"
	"github.com/paylens/paylens/pkg/ingest"
	"github.com/paylens/paylens/pkg/records"
)

func testTable(t *testing.T) *bands.Table {
	t.Helper()
	table, err := bands.NewTable([]bands.Band{
		{Grade: 1, Minimum: 855, Midpoint: 1140, Maximum: 1425},
		{Grade: 2, Minimum: 1545, Midpoint: 2060, Maximum: 2575},
		{Grade: 3, Minimum: 2400, Midpoint: 3200, Maximum: 4000},
	})
	require.NoError(t, err)
	return table
}

func TestBuildWithoutRecords(t *testing.T) {
	seq := benchmarks.Sequence{76200, 49800, 38100, 30936, 22678, 16555, 12390, 8443.5, 6350, 4515, 2816, 1482}

	ds := Build(testTable(t), seq, 12, nil)
	require.NotNil(t, ds)
	assert.Equal(t, []int{1, 2, 3}, ds.Grades)
	assert.Equal(t, []float64{855, 1545, 2400}, ds.Minimums)
	assert.Equal(t, []float64{1140, 2060, 3200}, ds.Midpoints)
	assert.Equal(t, []float64{1425, 2575, 4000}, ds.Maximums)
	assert.Equal(t, []float64{1482, 2816, 4515}, ds.Benchmark)
	assert.Empty(t, ds.Groups)
}

func TestBuildGroupsRecordsByGrade(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Name: "Alice", Grade: 2, Total: 2000},
		{ID: "E2", Name: "Bob", Grade: 2, Total: 5000, IsOutlier: true},
		{ID: "E3", Name: "Carol", Grade: 1, Total: 1200},
	}, nil)

	ds := Build(testTable(t), nil, 12, set)
	require.Len(t, ds.Groups, 2)

	assert.Equal(t, 1, ds.Groups[0].Grade, "groups follow ascending grade order")
	assert.Equal(t, 2, ds.Groups[1].Grade)

	g2 := ds.Groups[1]
	require.Len(t, g2.InBand, 1)
	require.Len(t, g2.Outliers, 1)
	assert.Equal(t, "E1", g2.InBand[0].ID)
	assert.Equal(t, "E2", g2.Outliers[0].ID)
}

func TestBuildSkipsGradesWithoutRecords(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Grade: 3, Total: 3000},
	}, nil)

	ds := Build(testTable(t), nil, 12, set)
	require.Len(t, ds.Groups, 1)
	assert.Equal(t, 3, ds.Groups[0].Grade)
}

func TestPointPlaceholders(t *testing.T) {
	// Only DESIGNATION was present in the upload.
	set := records.NewSet([]records.Record{
		{ID: "E1", Name: "Alice", Grade: 1, Total: 1200, Designation: "Engineer"},
	}, map[string]bool{ingest.ColumnDesignation: true})

	ds := Build(testTable(t), nil, 12, set)
	require.Len(t, ds.Groups, 1)
	require.Len(t, ds.Groups[0].InBand, 1)

	p := ds.Groups[0].InBand[0]
	assert.Equal(t, "Engineer", p.Designation)
	assert.Equal(t, "N/A", p.Department)
	assert.Equal(t, "N/A", p.JoinDate)
	assert.Equal(t, "N/A", p.Nationality)
	assert.Equal(t, 0.0, p.Basic)
	assert.Equal(t, 0.0, p.Allowance)
}

func TestPointAllowance(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Name: "Alice", Grade: 1, Total: 1200, Basic: 900},
	}, map[string]bool{ingest.ColumnBasic: true})

	ds := Build(testTable(t), nil, 12, set)
	require.Len(t, ds.Groups, 1)

	p := ds.Groups[0].InBand[0]
	assert.Equal(t, 900.0, p.Basic)
	assert.Equal(t, 300.0, p.Allowance, "allowance is the remainder of total over basic")
	assert.Equal(t, 1200.0, p.Total)
}

func TestBuildIgnoresRecordsOutsideTableGrades(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Grade: 42, Total: 100},
	}, nil)

	ds := Build(testTable(t), nil, 12, set)
	assert.Empty(t, ds.Groups, "records of grades absent from the band table are not charted")
}
