package relay

import (
	"time"

	"github.com/katalvlaran/keyrelay/keypad"
)

// Relay counts of the two standard runs.
const (
	// BaselineLevels is the short chain: two directional robots.
	BaselineLevels = 2
	// DeepLevels is the long chain: twenty-five directional robots.
	DeepLevels = 25
	// MaxExpandLevels bounds Solver.Presses; press strings grow roughly
	// 2.5× per level.
	MaxExpandLevels = 12
)

// Transition is the memoization key: one arm move plus press on the
// directional pad at Level.
type Transition struct {
	From  keypad.Button
	To    keypad.Button
	Level int
}

// Sequence is a parsed input line: the raw code and its numeric part.
type Sequence struct {
	Raw   string
	Value uint64
}

// Entry is the scored result of one input line.
type Entry struct {
	Line       int // 1-based
	Sequence   Sequence
	Presses    int64
	Complexity int64
}

// Skipped records a malformed line dropped under SkipMalformed.
type Skipped struct {
	Line int // 1-based
	Raw  string
	Err  error
}

// Report is the aggregate for one relay count.
type Report struct {
	Levels  int
	Total   int64
	Entries []Entry
	Skipped []Skipped
}

// MalformedPolicy selects what Scorer does with a malformed line.
type MalformedPolicy int

const (
	// AbortOnMalformed fails the whole Score call.
	AbortOnMalformed MalformedPolicy = iota
	// SkipMalformed records the line in Report.Skipped and carries on.
	SkipMalformed
)

// String returns the policy name used in configuration files.
func (p MalformedPolicy) String() string {
	switch p {
	case AbortOnMalformed:
		return "abort"
	case SkipMalformed:
		return "skip"
	default:
		return "unknown"
	}
}

// Observer receives instrumentation callbacks from Coster and Scorer.
// Implementations must be safe for concurrent use.
type Observer interface {
	// CacheLookup is called once per Cost call that reaches the cache.
	CacheLookup(hit bool)
	// CacheSize is called after a new entry has been stored and once more
	// when a Score call finishes.
	CacheSize(entries int)
	// SequenceScored is called once per input line; err is nil on success.
	SequenceScored(levels int, elapsed time.Duration, err error)
}

// NopObserver ignores every callback.
type NopObserver struct{}

func (NopObserver) CacheLookup(bool)                         {}
func (NopObserver) CacheSize(int)                            {}
func (NopObserver) SequenceScored(int, time.Duration, error) {}
