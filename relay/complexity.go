package relay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/keyrelay/keypad"
)

// ParseSequence validates an input line of the form digits+"A" and extracts
// its numeric part. Surrounding whitespace is ignored; leading zeros are
// allowed ("029A" has value 29).
// Returns ErrMalformedSequence otherwise, including when the digits do not
// fit in a uint64.
func ParseSequence(line string) (Sequence, error) {
	raw := strings.TrimSpace(line)
	n := len(raw)
	if n < 2 || keypad.Button(raw[n-1]) != keypad.Activate {
		return Sequence{}, fmt.Errorf("%w: %q must be digits followed by A", ErrMalformedSequence, line)
	}
	digits := raw[:n-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Sequence{}, fmt.Errorf("%w: %q has %q at position %d", ErrMalformedSequence, line, digits[i], i)
		}
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %q: %v", ErrMalformedSequence, line, err)
	}
	return Sequence{Raw: raw, Value: v}, nil
}

// Complexity returns the numeric part of line multiplied by its press count
// through `levels` relays, along with the press count.
func (s *Solver) Complexity(line string, levels int) (complexity, presses int64, err error) {
	seq, err := ParseSequence(line)
	if err != nil {
		return 0, 0, err
	}
	return s.complexityOf(seq, levels)
}

func (s *Solver) complexityOf(seq Sequence, levels int) (int64, int64, error) {
	presses, err := s.PressCount(seq.Raw, levels)
	if err != nil {
		return 0, 0, err
	}
	c, err := mulCost(seq.Value, presses)
	if err != nil {
		return 0, 0, fmt.Errorf("sequence %q complexity: %w", seq.Raw, err)
	}
	return c, presses, nil
}
