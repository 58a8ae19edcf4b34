// Package bands defines the grade-band salary table: one [minimum, maximum]
// interval per job grade, with a descriptive midpoint. The table is the
// reference every employee record is reconciled against.
package bands

import (
	"fmt"

	"github.com/paylens/paylens/pkg/errors"
)

// Band represents the configured salary interval for a single job grade.
type Band struct {
	Grade    int     `json:"grade" yaml:"grade"`       // Job grade identifier (positive, unique within a table)
	Minimum  float64 `json:"minimum" yaml:"minimum"`   // Lower bound of the band, inclusive
	Midpoint float64 `json:"midpoint" yaml:"midpoint"` // Descriptive midpoint, not used in classification
	Maximum  float64 `json:"maximum" yaml:"maximum"`   // Upper bound of the band, inclusive
}

// Validate checks the band invariants: a positive grade and
// minimum <= midpoint <= maximum.
func (b Band) Validate() error {
	if b.Grade <= 0 {
		return errors.NewValidationError("grade", b.Grade, "grade must be positive")
	}
	if b.Minimum > b.Midpoint {
		return errors.NewValidationError("minimum", b.Minimum,
			fmt.Sprintf("minimum %.2f exceeds midpoint %.2f for grade %d", b.Minimum, b.Midpoint, b.Grade))
	}
	if b.Midpoint > b.Maximum {
		return errors.NewValidationError("midpoint", b.Midpoint,
			fmt.Sprintf("midpoint %.2f exceeds maximum %.2f for grade %d", b.Midpoint, b.Maximum, b.Grade))
	}
	return nil
}

// Contains reports whether total falls inside the band. The interval is
// closed: values exactly equal to minimum or maximum are inside.
func (b Band) Contains(total float64) bool {
	return total >= b.Minimum && total <= b.Maximum
}
