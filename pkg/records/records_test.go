package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *Set {
	return NewSet([]Record{
		{ID: "E1", Name: "Alice", Grade: 5, Total: 6500},
		{ID: "E2", Name: "Bob", Grade: 3, Total: 3200, IsOutlier: true},
		{ID: "E3", Name: "Carol", Grade: 5, Total: 9000, IsOutlier: true},
		{ID: "E4", Name: "Dan", Grade: 3, Total: 2800},
	}, map[string]bool{"BASIC": true, "DOJ": false})
}

func TestSetGrades(t *testing.T) {
	assert.Equal(t, []int{3, 5}, testSet().Grades())
}

func TestSetByGrade(t *testing.T) {
	byGrade := testSet().ByGrade()
	require.Len(t, byGrade, 2)
	assert.Len(t, byGrade[3], 2)
	assert.Len(t, byGrade[5], 2)
	assert.Equal(t, "E2", byGrade[3][0].ID, "input order is preserved within a grade")
}

func TestSetPartition(t *testing.T) {
	inBand, outliers := testSet().Partition(5)
	require.Len(t, inBand, 1)
	require.Len(t, outliers, 1)
	assert.Equal(t, "E1", inBand[0].ID)
	assert.Equal(t, "E3", outliers[0].ID)

	inBand, outliers = testSet().Partition(99)
	assert.Empty(t, inBand)
	assert.Empty(t, outliers)
}

func TestSetOutliers(t *testing.T) {
	set := testSet()
	assert.Equal(t, 2, set.OutlierCount())

	outliers := set.Outliers()
	require.Len(t, outliers, 2)
	assert.Equal(t, "E2", outliers[0].ID)
	assert.Equal(t, "E3", outliers[1].ID)
}

func TestSetHasOptional(t *testing.T) {
	set := testSet()
	assert.True(t, set.HasOptional("BASIC"))
	assert.False(t, set.HasOptional("DOJ"))
	assert.False(t, set.HasOptional("NATIONALITY"))
}

func TestSetNilSafety(t *testing.T) {
	var set *Set
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.HasOptional("BASIC"))
	assert.Nil(t, set.Copy())
}

func TestSetCopy(t *testing.T) {
	set := testSet()
	clone := set.Copy()
	clone.Records[0].IsOutlier = true

	assert.False(t, set.Records[0].IsOutlier, "copies do not share record storage")
	assert.True(t, clone.HasOptional("BASIC"))
}
