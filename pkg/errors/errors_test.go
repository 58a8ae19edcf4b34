package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingColumnsError(t *testing.T) {
	err := NewMissingColumnsError([]string{"GRADE", "TOTAL"})
	assert.Equal(t, "missing required columns: GRADE, TOTAL", err.Error())
	assert.True(t, stderrors.Is(err, ErrMissingColumns))
	assert.False(t, stderrors.Is(err, ErrUnparseableGrades))
}

func TestUnparseableGradesError(t *testing.T) {
	err := NewUnparseableGradesError([]string{"senior", "junior"})
	assert.Contains(t, err.Error(), "senior")
	assert.True(t, stderrors.Is(err, ErrUnparseableGrades))
}

func TestEmptyAfterFilteringError(t *testing.T) {
	err := NewEmptyAfterFilteringError(7)
	assert.Contains(t, err.Error(), "7 rows")
	assert.True(t, stderrors.Is(err, ErrEmptyAfterFiltering))
}

func TestDecodeError(t *testing.T) {
	err := NewDecodeError("upload.bin", map[string]error{
		"csv": fmt.Errorf("bare quote"),
	})
	assert.Contains(t, err.Error(), "upload.bin")
	assert.Contains(t, err.Error(), "csv: bare quote")
	assert.True(t, stderrors.Is(err, ErrUndecodable))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("grade", 0, "grade must be positive")
	assert.Equal(t, "validation failed for field grade: grade must be positive", err.Error())
	assert.True(t, IsValidationError(err))

	bare := NewValidationError("", nil, "bad input")
	assert.Equal(t, "validation failed: bad input", bare.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("band", "grade 42")
	assert.Equal(t, "band grade 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("bad syntax")
	err := WrapParse("yaml", "bands.yaml", inner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bands.yaml")
	assert.Equal(t, inner, stderrors.Unwrap(err))

	assert.NoError(t, WrapParse("yaml", "bands.yaml", nil))
}

func TestIOErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := WrapIO("open", "/tmp/x", inner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IO error during open of /tmp/x")
	assert.Equal(t, inner, stderrors.Unwrap(err))

	assert.NoError(t, WrapIO("open", "/tmp/x", nil))
}

func TestIsIngestFailure(t *testing.T) {
	assert.True(t, IsIngestFailure(NewMissingColumnsError([]string{"GRADE"})))
	assert.True(t, IsIngestFailure(NewUnparseableGradesError(nil)))
	assert.True(t, IsIngestFailure(NewEmptyAfterFilteringError(3)))
	assert.True(t, IsIngestFailure(NewUnparseableTotalsError(nil)))

	assert.False(t, IsIngestFailure(NewDecodeError("f", nil)))
	assert.False(t, IsIngestFailure(fmt.Errorf("unrelated")))
	assert.False(t, IsIngestFailure(nil))
}
