package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/paylens/paylens"
	"github.com/paylens/paylens/internal/cmd/output"
	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/errors"
	"github.com/paylens/paylens/pkg/logging"
)

// newSession builds a session, applying band edits from a YAML file when
// one was given.
func newSession(bandsFile string) (paylens.Session, error) {
	sess, err := paylens.New()
	if err != nil {
		return nil, err
	}
	if bandsFile != "" {
		edits, err := loadBandEdits(bandsFile)
		if err != nil {
			return nil, err
		}
		if err := sess.UpdateBands(edits); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// loadBandEdits reads a YAML list of band overrides keyed by grade.
func loadBandEdits(path string) ([]bands.Band, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var edits []bands.Band
	if err := yaml.Unmarshal(data, &edits); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return edits, nil
}

// parseBenchmarkEdits turns repeated grade=value flags into a sparse
// edit map.
func parseBenchmarkEdits(pairs []string) (map[int]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	edits := make(map[int]float64, len(pairs))
	for _, pair := range pairs {
		grade, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, errors.NewValidationError("set", pair, "expected grade=value")
		}
		g, err := strconv.Atoi(strings.TrimSpace(grade))
		if err != nil || g <= 0 {
			return nil, errors.NewValidationError("set", pair, "grade must be a positive integer")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errors.NewValidationError("set", pair, "value must be numeric")
		}
		edits[g] = v
	}
	return edits, nil
}

// ingestFile decodes and ingests a spreadsheet into the session,
// logging the ingest diagnostics.
func ingestFile(sess paylens.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer f.Close()

	diag, err := sess.Ingest(f, path)
	if err != nil {
		return err
	}
	logging.Info().
		Str("file", path).
		Int("rows", diag.OriginalRows).
		Int("kept", diag.Kept).
		Int("dropped_grades", diag.DroppedGrades).
		Int("dropped_totals", diag.DroppedTotals).
		Str("grade_strategy", diag.GradeStrategy).
		Msg("spreadsheet ingested")
	return nil
}

// formatter resolves the output format from the global flag, falling
// back to TTY detection.
func formatter() (output.Formatter, error) {
	if cfg != nil && cfg.Output != "" {
		format, err := output.ParseFormat(cfg.Output)
		if err != nil {
			return nil, err
		}
		return output.NewFormatter(format), nil
	}
	return output.NewFormatter(output.DetectFormat("")), nil
}
