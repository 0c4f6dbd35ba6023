package relay

import (
	"errors"
	"math"
	"math/bits"
)

var (
	// ErrInvalidLevel indicates a negative cost level or a chain with no relay.
	ErrInvalidLevel = errors.New("relay: invalid relay level")
	// ErrMalformedSequence indicates an input line that is not digits followed by A.
	ErrMalformedSequence = errors.New("relay: malformed sequence")
	// ErrOverflow indicates a press count or complexity that does not fit in int64.
	ErrOverflow = errors.New("relay: int64 overflow")
	// ErrExpandTooDeep indicates Presses was asked to materialise too deep a chain.
	ErrExpandTooDeep = errors.New("relay: chain too deep to materialise")
)

// addCost returns a+b or ErrOverflow. Both operands are non-negative.
func addCost(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// mulCost returns v*n or ErrOverflow. n is non-negative.
func mulCost(v uint64, n int64) (int64, error) {
	hi, lo := bits.Mul64(v, uint64(n))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}
