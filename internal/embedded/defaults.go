package embedded

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/benchmarks"
	"github.com/paylens/paylens/pkg/errors"
)

// benchmarkFile is the on-disk shape of defaults/benchmarks.yaml.
type benchmarkFile struct {
	MaxGrade int       `yaml:"max_grade"`
	Values   []float64 `yaml:"values"`
}

// Bands loads the default grade-band table.
func Bands() (*bands.Table, error) {
	data, err := fs.ReadFile(FS, "defaults/bands.yaml")
	if err != nil {
		return nil, errors.WrapIO("read", "defaults/bands.yaml", err)
	}

	var bs []bands.Band
	if err := yaml.Unmarshal(data, &bs); err != nil {
		return nil, errors.WrapParse("yaml", "defaults/bands.yaml", err)
	}
	return bands.NewTable(bs)
}

// Benchmarks loads the default market-benchmark sequence and the max
// grade its descending order is anchored to.
func Benchmarks() (benchmarks.Sequence, int, error) {
	data, err := fs.ReadFile(FS, "defaults/benchmarks.yaml")
	if err != nil {
		return nil, 0, errors.WrapIO("read", "defaults/benchmarks.yaml", err)
	}

	var bf benchmarkFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, 0, errors.WrapParse("yaml", "defaults/benchmarks.yaml", err)
	}
	if bf.MaxGrade <= 0 {
		return nil, 0, errors.NewValidationError("max_grade", bf.MaxGrade, "max_grade must be positive")
	}
	return benchmarks.Sequence(bf.Values), bf.MaxGrade, nil
}
