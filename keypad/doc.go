// Package keypad models the two fixed button grids of the relay puzzle and
// enumerates the shortest candidate move sequences between their buttons.
//
// What:
//
//   - Keypad wraps one of two immutable layouts: the numeric pad (3×4,
//     digits 0-9 plus A) and the directional pad (3×2, ^ v < > plus A).
//   - Every layout carries exactly one gap: a physically absent cell that no
//     arm may ever hover over.
//   - Paths/Routes enumerate the monotone (horizontal-run then vertical-run, or
//     the reverse) candidates between two buttons, dropping any that cross the gap.
//   - Walk, Expand and Distance replay and verify move sequences.
//
// Why:
//
//   - A candidate path is a sequence of presses on the pad one level up, so the
//     cheaper of two equal-length candidates depends on what sits above it.
//     Returning both lets the relay package pick by downstream cost.
//
// Layouts (column, row), row 0 at the top:
//
//	numeric             directional
//	+---+---+---+       +---+---+---+
//	| 7 | 8 | 9 |       |   | ^ | A |
//	+---+---+---+       +---+---+---+
//	| 4 | 5 | 6 |       | < | v | > |
//	+---+---+---+       +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	|   | 0 | A |
//	+---+---+---+
//
// Complexity:
//
//   - Coordinate, ButtonAt, InBounds: O(1).
//   - Routes, Paths: O(|dx|+|dy|) per candidate, at most two candidates.
//   - Distance: O(W×H) breadth-first search, W×H ≤ 12.
//
// Errors:
//
//   - ErrUnknownButton: symbol is not in the keypad's alphabet.
//   - ErrBadMove: a path contains a symbol that is not a move or activate.
//   - ErrGapCrossed: a replayed path visits the gap.
//   - ErrOutOfBounds: a replayed path leaves the grid.
//   - ErrNoPath: no route exists between two cells.
package keypad
