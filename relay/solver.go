package relay

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keyrelay/keypad"
)

// Option customises a Solver.
type Option func(*solverConfig)

type solverConfig struct {
	cache    *Cache
	observer Observer
}

// WithCache shares an existing Cache. Panics on nil.
func WithCache(c *Cache) Option {
	if c == nil {
		panic("relay: WithCache(nil)")
	}
	return func(cfg *solverConfig) { cfg.cache = c }
}

// WithObserver installs an instrumentation hook. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("relay: WithObserver(nil)")
	}
	return func(cfg *solverConfig) { cfg.observer = o }
}

// Solver computes top-level press counts for numeric-keypad codes.
// A Solver is safe for concurrent use; all calls share one Cache.
type Solver struct {
	numeric  *keypad.Keypad
	coster   *Coster
	observer Observer
}

// NewSolver returns a Solver with a fresh cache unless WithCache is given.
func NewSolver(opts ...Option) *Solver {
	cfg := solverConfig{observer: NopObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{
		numeric:  keypad.NumericPad(),
		coster:   NewCoster(cfg.cache, cfg.observer),
		observer: cfg.observer,
	}
}

// Cache returns the Solver's transition cache.
func (s *Solver) Cache() *Cache { return s.coster.Cache() }

// Coster returns the level-cost evaluator backing the Solver.
func (s *Solver) Coster() *Coster { return s.coster }

// PressCount returns the fewest presses on the top control pad that make the
// numeric keypad, `levels` directional robots below, type sequence.
//
// Behavior:
//  1. Prepend the resting symbol A to sequence.
//  2. For each adjacent pair (a, b), enumerate numeric candidates a→b.
//  3. Cost each candidate P as Σ cost(s[i], s[i+1], levels-1) over s = "A"+P.
//  4. Sum the cheapest candidate cost over all pairs.
//
// Returns ErrInvalidLevel for levels < 1, keypad.ErrUnknownButton (wrapped
// with the position) for a symbol outside the numeric alphabet, ErrOverflow
// if the total exceeds int64. The result is never below len(sequence).
func (s *Solver) PressCount(sequence string, levels int) (int64, error) {
	if levels < 1 {
		return 0, fmt.Errorf("%w: %d relays", ErrInvalidLevel, levels)
	}
	prev := keypad.Activate
	var total int64
	for i := 0; i < len(sequence); i++ {
		next := keypad.Button(sequence[i])
		_, n, err := s.numericStep(prev, next, levels)
		if err != nil {
			return 0, fmt.Errorf("sequence %q position %d: %w", sequence, i, err)
		}
		if total, err = addCost(total, n); err != nil {
			return 0, fmt.Errorf("sequence %q: %w", sequence, err)
		}
		prev = next
	}
	return total, nil
}

// numericStep picks the cheapest numeric candidate from a to b.
func (s *Solver) numericStep(a, b keypad.Button, levels int) (keypad.Path, int64, error) {
	paths, err := s.numeric.Paths(a, b)
	if err != nil {
		return "", 0, err
	}
	return s.coster.cheapest(paths, levels-1)
}

// Presses materialises one optimal top-level press string for sequence.
// Its length equals PressCount(sequence, levels). Decoding it with
// keypad.DirectionalPad().Expand `levels` times and then with
// keypad.NumericPad().Expand yields sequence again.
//
// The string grows roughly 2.5× per relay, so levels is capped at
// MaxExpandLevels (ErrExpandTooDeep).
func (s *Solver) Presses(sequence string, levels int) (string, error) {
	if levels < 1 {
		return "", fmt.Errorf("%w: %d relays", ErrInvalidLevel, levels)
	}
	if levels > MaxExpandLevels {
		return "", fmt.Errorf("%w: %d > %d", ErrExpandTooDeep, levels, MaxExpandLevels)
	}
	var sb strings.Builder
	prev := keypad.Activate
	for i := 0; i < len(sequence); i++ {
		next := keypad.Button(sequence[i])
		p, _, err := s.numericStep(prev, next, levels)
		if err != nil {
			return "", fmt.Errorf("sequence %q position %d: %w", sequence, i, err)
		}
		if err = s.expandPath(&sb, p, levels-1); err != nil {
			return "", err
		}
		prev = next
	}
	return sb.String(), nil
}

// expandPath writes the presses that make the pad at `level` type p.
func (s *Solver) expandPath(sb *strings.Builder, p keypad.Path, level int) error {
	prev := keypad.Activate
	for i := 0; i < len(p); i++ {
		next := keypad.Button(p[i])
		if err := s.expandTransition(sb, prev, next, level); err != nil {
			return err
		}
		prev = next
	}
	return nil
}

// expandTransition writes the presses behind one Cost(from, to, level).
func (s *Solver) expandTransition(sb *strings.Builder, from, to keypad.Button, level int) error {
	paths, err := s.coster.pad.Paths(from, to)
	if err != nil {
		return err
	}
	if level == 0 {
		best := paths[0]
		for _, p := range paths[1:] {
			if p.Len() < best.Len() {
				best = p
			}
		}
		sb.WriteString(string(best))
		return nil
	}
	best, _, err := s.coster.cheapest(paths, level-1)
	if err != nil {
		return err
	}
	return s.expandPath(sb, best, level-1)
}
