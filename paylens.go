// Package paylens reconciles uploaded employee compensation records
// against a configurable table of job-grade salary bands and assembles
// the result into a chart-ready form alongside market-benchmark values.
//
// All mutable state (the band table, the benchmark sequence, and the
// employee record set) belongs to a Session. Sessions are fully isolated
// from one another; a host serving multiple users creates one Session per
// user and never shares it.
package paylens

import (
	"io"
	"sync"

	"github.com/paylens/paylens/internal/embedded"
	"github.com/paylens/paylens/internal/sheet"
	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/benchmarks"
	"github.com/paylens/paylens/pkg/chart"
	"github.com/paylens/paylens/pkg/ingest"
	"github.com/paylens/paylens/pkg/reconcile"
	"github.com/paylens/paylens/pkg/records"
)

// Session owns one user's reconciliation state and serializes every
// mutation. Outlier flags are recomputed on every ingest and band edit,
// so consumers always read an already-reconciled view.
type Session interface {
	// Ingest decodes an uploaded spreadsheet, normalizes it, and
	// replaces the record set wholesale. On failure the previous record
	// set stays in place.
	Ingest(r io.Reader, filename string) (*ingest.Diagnostics, error)

	// IngestTable ingests an already-decoded raw table.
	IngestTable(t *ingest.Table) (*ingest.Diagnostics, error)

	// Bands returns the band table in ascending grade order.
	Bands() []bands.Band

	// UpdateBands overwrites band values by grade key and reclassifies
	// the loaded record set, if any.
	UpdateBands(edits []bands.Band) error

	// Records returns a copy of the current outlier-tagged record set,
	// or nil before the first successful ingest.
	Records() *records.Set

	// Benchmarks returns a copy of the raw benchmark sequence in its
	// canonical descending grade order.
	Benchmarks() benchmarks.Sequence

	// AlignedBenchmarks returns the benchmark values aligned to the
	// ascending grades of the band table.
	AlignedBenchmarks() []float64

	// UpdateBenchmarks rebuilds the benchmark sequence from sparse
	// per-grade edits.
	UpdateBenchmarks(edits map[int]float64)

	// ResetBenchmarks restores the predefined market values.
	ResetBenchmarks() error

	// MaxGrade returns the grade the benchmark sequence's descending
	// order is anchored to.
	MaxGrade() int

	// Reclassify re-runs classification against the current band table.
	Reclassify() reconcile.Result

	// Chart assembles the chart-ready dataset for the rendering layer.
	Chart() *chart.Dataset

	// OnReclassified registers a callback fired after every
	// classification pass.
	OnReclassified(ReclassifiedHook)
}

// session is the internal implementation of the Session interface.
type session struct {
	mu        sync.RWMutex
	table     *bands.Table
	benchmark benchmarks.Sequence
	maxGrade  int
	set       *records.Set
	ingestor  *ingest.Ingestor

	hooks *hooks
}

// New creates a Session seeded with the embedded default band table and
// market benchmarks, then applies the given options.
func New(opts ...Option) (Session, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	s := &session{
		ingestor: ingest.New(ingest.WithLogger(cfg.logger)),
		hooks:    newHooks(),
	}

	if cfg.table != nil {
		s.table = cfg.table
	} else {
		table, err := embedded.Bands()
		if err != nil {
			return nil, err
		}
		s.table = table
	}

	if cfg.benchmark != nil {
		s.benchmark = cfg.benchmark.Copy()
		s.maxGrade = cfg.maxGrade
	} else {
		seq, maxGrade, err := embedded.Benchmarks()
		if err != nil {
			return nil, err
		}
		s.benchmark = seq
		s.maxGrade = maxGrade
	}

	return s, nil
}

// Ingest decodes and ingests an uploaded spreadsheet.
func (s *session) Ingest(r io.Reader, filename string) (*ingest.Diagnostics, error) {
	table, err := sheet.Decode(r, filename)
	if err != nil {
		return nil, err
	}
	return s.IngestTable(table)
}

// IngestTable ingests an already-decoded raw table. The record set is
// replaced only on success, and the new set is classified before it
// becomes visible.
func (s *session) IngestTable(t *ingest.Table) (*ingest.Diagnostics, error) {
	set, diag, err := s.ingestor.Ingest(t)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.set = set
	res := reconcile.Classify(s.set, s.table)
	s.mu.Unlock()

	s.hooks.fireReclassified(res)
	return diag, nil
}

// Bands returns the band table in ascending grade order.
func (s *session) Bands() []bands.Band {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Bands()
}

// UpdateBands overwrites band values by grade key. Edits for unknown
// grades are silently ignored. Any invariant violation rejects the whole
// batch. On success the loaded record set is reclassified.
func (s *session) UpdateBands(edits []bands.Band) error {
	s.mu.Lock()
	if err := s.table.Update(edits); err != nil {
		s.mu.Unlock()
		return err
	}
	var (
		res   reconcile.Result
		fired bool
	)
	if s.set != nil {
		res = reconcile.Classify(s.set, s.table)
		fired = true
	}
	s.mu.Unlock()

	if fired {
		s.hooks.fireReclassified(res)
	}
	return nil
}

// Records returns a copy of the current record set.
func (s *session) Records() *records.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Copy()
}

// Benchmarks returns a copy of the raw descending benchmark sequence.
func (s *session) Benchmarks() benchmarks.Sequence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.benchmark.Copy()
}

// AlignedBenchmarks returns benchmark values aligned to the table's
// ascending grades.
func (s *session) AlignedBenchmarks() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return benchmarks.AlignToGrades(s.benchmark, s.table.Grades(), s.maxGrade)
}

// UpdateBenchmarks rebuilds the benchmark sequence from sparse per-grade
// edits, restoring the canonical descending storage order.
func (s *session) UpdateBenchmarks(edits map[int]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.benchmark = benchmarks.ApplyEdits(edits, s.benchmark, s.maxGrade)
}

// ResetBenchmarks restores the predefined market values.
func (s *session) ResetBenchmarks() error {
	seq, maxGrade, err := embedded.Benchmarks()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.benchmark = seq
	s.maxGrade = maxGrade
	s.mu.Unlock()
	return nil
}

// MaxGrade returns the benchmark sequence's anchor grade.
func (s *session) MaxGrade() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxGrade
}

// Reclassify re-runs classification against the current band table.
func (s *session) Reclassify() reconcile.Result {
	s.mu.Lock()
	res := reconcile.Classify(s.set, s.table)
	s.mu.Unlock()

	s.hooks.fireReclassified(res)
	return res
}

// Chart assembles the chart-ready dataset.
func (s *session) Chart() *chart.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return chart.Build(s.table, s.benchmark, s.maxGrade, s.set)
}

// OnReclassified registers a callback fired after every classification
// pass.
func (s *session) OnReclassified(fn ReclassifiedHook) {
	s.hooks.onReclassified(fn)
}
