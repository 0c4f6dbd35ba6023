package relay

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keyrelay/logging"
)

// ScorerOption customises a Scorer.
type ScorerOption func(*Scorer)

// WithWorkers bounds the number of lines scored concurrently.
// 0 means runtime.GOMAXPROCS(0). Panics on a negative count.
func WithWorkers(n int) ScorerOption {
	if n < 0 {
		panic(fmt.Sprintf("relay: WithWorkers(%d)", n))
	}
	return func(s *Scorer) { s.workers = n }
}

// WithMalformedPolicy selects abort (default) or skip for malformed lines.
func WithMalformedPolicy(p MalformedPolicy) ScorerOption {
	return func(s *Scorer) { s.policy = p }
}

// WithLogger installs a structured logger. Panics on nil.
func WithLogger(l logging.Logger) ScorerOption {
	if l == nil {
		panic("relay: WithLogger(nil)")
	}
	return func(s *Scorer) { s.logger = l }
}

// Scorer sums complexities over a list of input lines.
type Scorer struct {
	solver  *Solver
	workers int
	policy  MalformedPolicy
	logger  logging.Logger
}

// NewScorer returns a Scorer over solver; a nil solver gets NewSolver().
func NewScorer(solver *Solver, opts ...ScorerOption) *Scorer {
	if solver == nil {
		solver = NewSolver()
	}
	s := &Scorer{solver: solver, logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logging.Component("relay"))
	return s
}

// Solver returns the underlying Solver.
func (s *Scorer) Solver() *Solver { return s.solver }

// lineResult is the per-line outcome collected by a worker.
type lineResult struct {
	entry   Entry
	skipped *Skipped
}

// Score parses every line, computes its complexity through `levels` relays,
// and returns the per-line entries (in input order) and their sum.
//
// Lines are scored concurrently by up to WithWorkers goroutines sharing the
// Solver's cache. A malformed line aborts the call under AbortOnMalformed
// (the error carries the 1-based line number and wraps ErrMalformedSequence)
// or is recorded in Report.Skipped under SkipMalformed. Any other error,
// and cancellation of ctx, aborts the call.
func (s *Scorer) Score(ctx context.Context, lines []string, levels int) (Report, error) {
	if levels < 1 {
		return Report{}, fmt.Errorf("%w: %d relays", ErrInvalidLevel, levels)
	}
	log := s.logger.With(logging.Levels(levels))
	timer := logging.StartTimer(log, "complexity sum")

	results := make([]lineResult, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	workers := s.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.scoreLine(i+1, line, levels)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()
	s.solver.observer.CacheSize(s.solver.Cache().Len())
	if err != nil {
		timer.EndError(err)
		return Report{}, err
	}

	rep := Report{Levels: levels, Entries: make([]Entry, 0, len(lines))}
	for _, r := range results {
		if r.skipped != nil {
			rep.Skipped = append(rep.Skipped, *r.skipped)
			continue
		}
		total, err := addCost(rep.Total, r.entry.Complexity)
		if err != nil {
			err = fmt.Errorf("complexity sum at line %d: %w", r.entry.Line, err)
			timer.EndError(err)
			return Report{}, err
		}
		rep.Total = total
		rep.Entries = append(rep.Entries, r.entry)
	}
	timer.End(logging.Int64("total", rep.Total), logging.Int("scored", len(rep.Entries)), logging.Int("skipped", len(rep.Skipped)))

	return rep, nil
}

// scoreLine handles one input line under the malformed-line policy.
func (s *Scorer) scoreLine(lineNo int, line string, levels int) (lineResult, error) {
	start := time.Now()
	seq, err := ParseSequence(line)
	if err != nil {
		s.solver.observer.SequenceScored(levels, time.Since(start), err)
		if s.policy == SkipMalformed {
			s.logger.Warn("skipping malformed line", logging.Line(lineNo), logging.Sequence(line), logging.Levels(levels), logging.Error(err))
			return lineResult{skipped: &Skipped{Line: lineNo, Raw: line, Err: err}}, nil
		}
		return lineResult{}, fmt.Errorf("line %d: %w", lineNo, err)
	}

	complexity, presses, err := s.solver.complexityOf(seq, levels)
	s.solver.observer.SequenceScored(levels, time.Since(start), err)
	if err != nil {
		return lineResult{}, fmt.Errorf("line %d: %w", lineNo, err)
	}
	s.logger.Debug("sequence scored",
		logging.Line(lineNo),
		logging.Sequence(seq.Raw),
		logging.Levels(levels),
		logging.Int64("presses", presses),
		logging.Int64("complexity", complexity),
	)
	return lineResult{entry: Entry{Line: lineNo, Sequence: seq, Presses: presses, Complexity: complexity}}, nil
}

// ScoreLevels runs Score once per relay count, in order, sharing the cache.
func (s *Scorer) ScoreLevels(ctx context.Context, lines []string, levels ...int) ([]Report, error) {
	if len(levels) == 0 {
		return nil, errors.New("relay: ScoreLevels needs at least one relay count")
	}
	reports := make([]Report, 0, len(levels))
	for _, n := range levels {
		rep, err := s.Score(ctx, lines, n)
		if err != nil {
			return nil, fmt.Errorf("%d relays: %w", n, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
