package keypad

import "errors"

var (
	// ErrUnknownButton indicates a symbol outside the keypad's alphabet.
	ErrUnknownButton = errors.New("keypad: unknown button")
	// ErrBadMove indicates a path symbol that is neither a direction nor activate.
	ErrBadMove = errors.New("keypad: invalid move symbol")
	// ErrGapCrossed indicates a replayed path entered the gap cell.
	ErrGapCrossed = errors.New("keypad: path crosses the gap")
	// ErrOutOfBounds indicates a replayed path left the grid.
	ErrOutOfBounds = errors.New("keypad: path leaves the grid")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("keypad: no path between buttons")
)
