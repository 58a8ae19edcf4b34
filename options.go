package paylens

import (
	"github.com/rs/zerolog"

	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/benchmarks"
	"github.com/paylens/paylens/pkg/errors"
	"github.com/paylens/paylens/pkg/logging"
)

// Option is a function that configures a Session
type Option func(*config) error

// config collects the options applied to a new Session.
type config struct {
	table     *bands.Table
	benchmark benchmarks.Sequence
	maxGrade  int
	logger    *zerolog.Logger
}

// newConfig applies the options over the defaults.
func newConfig(opts ...Option) (*config, error) {
	cfg := &config{logger: logging.Default()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithBands seeds the session with the given band table instead of the
// embedded defaults.
func WithBands(bs []bands.Band) Option {
	return func(c *config) error {
		table, err := bands.NewTable(bs)
		if err != nil {
			return err
		}
		c.table = table
		return nil
	}
}

// WithBenchmarks seeds the session with the given benchmark sequence in
// descending grade order, anchored to maxGrade.
func WithBenchmarks(seq benchmarks.Sequence, maxGrade int) Option {
	return func(c *config) error {
		if maxGrade <= 0 {
			return errors.NewValidationError("maxGrade", maxGrade, "max grade must be positive")
		}
		c.benchmark = seq
		c.maxGrade = maxGrade
		return nil
	}
}

// WithLogger sets the logger used for session diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}
