package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/records"
)

func testTable(t *testing.T) *bands.Table {
	t.Helper()
	table, err := bands.NewTable([]bands.Band{
		{Grade: 5, Minimum: 4875, Midpoint: 6500, Maximum: 8125},
		{Grade: 3, Minimum: 2400, Midpoint: 3200, Maximum: 4000},
	})
	require.NoError(t, err)
	return table
}

func TestClassify(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Grade: 5, Total: 6500},
		{ID: "E2", Grade: 5, Total: 9000},
		{ID: "E3", Grade: 3, Total: 2399.99},
		{ID: "E4", Grade: 3, Total: 3000},
	}, nil)

	res := Classify(set, testTable(t))
	assert.Equal(t, 4, res.Classified)
	assert.Equal(t, 2, res.Outliers)
	assert.Empty(t, res.UnknownGrades)

	assert.False(t, set.Records[0].IsOutlier)
	assert.True(t, set.Records[1].IsOutlier)
	assert.True(t, set.Records[2].IsOutlier)
	assert.False(t, set.Records[3].IsOutlier)
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		outlier bool
	}{
		{"at minimum", 4875, false},
		{"at maximum", 8125, false},
		{"just below minimum", 4874.99, true},
		{"just above maximum", 8125.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := records.NewSet([]records.Record{{Grade: 5, Total: tt.total}}, nil)
			res := Classify(set, testTable(t))
			assert.Equal(t, tt.outlier, set.Records[0].IsOutlier)
			if tt.outlier {
				assert.Equal(t, 1, res.Outliers)
			} else {
				assert.Equal(t, 0, res.Outliers)
			}
		})
	}
}

func TestClassifyUnknownGrade(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Grade: 9, Total: 100},
		{ID: "E2", Grade: 9, Total: 200},
		{ID: "E3", Grade: 7, Total: 300},
	}, nil)

	res := Classify(set, testTable(t))
	assert.Equal(t, 3, res.Classified)
	assert.Equal(t, 0, res.Outliers)
	assert.Equal(t, []int{7, 9}, res.UnknownGrades, "unknown grades are reported once each, ascending")

	for _, r := range set.Records {
		assert.False(t, r.IsOutlier, "a grade without a band is never flagged")
	}
}

func TestClassifyOverwritesPreviousFlags(t *testing.T) {
	set := records.NewSet([]records.Record{
		{ID: "E1", Grade: 5, Total: 6500, IsOutlier: true},
	}, nil)

	Classify(set, testTable(t))
	assert.False(t, set.Records[0].IsOutlier, "stale flags are overwritten, not OR-ed")
}

func TestClassifyIdempotent(t *testing.T) {
	set := records.NewSet([]records.Record{
		{Grade: 5, Total: 9000},
		{Grade: 3, Total: 3000},
	}, nil)
	table := testTable(t)

	first := Classify(set, table)
	second := Classify(set, table)
	assert.Equal(t, first, second)
	assert.True(t, set.Records[0].IsOutlier)
	assert.False(t, set.Records[1].IsOutlier)
}

func TestClassifyAfterBandEdit(t *testing.T) {
	set := records.NewSet([]records.Record{
		{Grade: 5, Total: 9000},
	}, nil)
	table := testTable(t)

	res := Classify(set, table)
	assert.Equal(t, 1, res.Outliers)

	require.NoError(t, table.Update([]bands.Band{
		{Grade: 5, Minimum: 4875, Midpoint: 7000, Maximum: 9500},
	}))
	res = Classify(set, table)
	assert.Equal(t, 0, res.Outliers)
	assert.False(t, set.Records[0].IsOutlier)
}

func TestClassifyNilInputs(t *testing.T) {
	res := Classify(nil, testTable(t))
	assert.Zero(t, res.Classified)

	set := records.NewSet([]records.Record{{Grade: 1, Total: 100}}, nil)
	res = Classify(set, nil)
	assert.Zero(t, res.Classified)
}
