package keypad

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Paths returns the candidate Paths between two buttons of this keypad.
// Returns ErrUnknownButton if either symbol is not on the layout.
// See Routes for the enumeration rules.
func (k *Keypad) Paths(from, to Button) ([]Path, error) {
	a, err := k.Coordinate(from)
	if err != nil {
		return nil, err
	}
	b, err := k.Coordinate(to)
	if err != nil {
		return nil, err
	}
	return k.Routes(a, b), nil
}

// Routes enumerates the minimal monotone move sequences from one cell to another.
//
// Behavior:
//  1. dx = to.Col-from.Col, dy = to.Row-from.Row.
//  2. dx == dy == 0: the only candidate is "A".
//  3. Otherwise build a horizontal run (> or <, |dx| times) and a vertical run
//     (v or ^, |dy| times) and try both orders: horizontal+vertical+"A" and
//     vertical+horizontal+"A".
//  4. Drop an order whose route visits the gap; drop the second order if it
//     spells the same string as the first (one of the runs is empty).
//
// Each candidate has length |dx|+|dy|+1. Both orders are kept when both are
// free of the gap: they cost the same here but may differ once the candidate
// is typed through further relay pads.
// Returns nil if either endpoint is the gap or lies outside the grid.
// Complexity: O(|dx|+|dy|).
func (k *Keypad) Routes(from, to Coord) []Path {
	if !k.usable(from) || !k.usable(to) {
		return nil
	}
	dx, dy := to.Col-from.Col, to.Row-from.Row
	if dx == 0 && dy == 0 {
		return []Path{Path(Activate.String())}
	}
	horizontal := run(Right, Left, dx)
	vertical := run(Down, Up, dy)

	paths := make([]Path, 0, 2)
	if !k.horizontalFirstCrossesGap(from, to) {
		paths = append(paths, Path(horizontal+vertical+Activate.String()))
	}
	if !k.verticalFirstCrossesGap(from, to) {
		p := Path(vertical + horizontal + Activate.String())
		if len(paths) == 0 || paths[0] != p {
			paths = append(paths, p)
		}
	}

	return paths
}

// horizontalFirstCrossesGap reports whether the route that moves along row
// from.Row to column to.Col, then along column to.Col to row to.Row, visits
// the gap. The corner (to.Col, from.Row) is included on both legs.
func (k *Keypad) horizontalFirstCrossesGap(from, to Coord) bool {
	g := k.gap
	if g.Row == from.Row && between(g.Col, from.Col, to.Col) {
		return true
	}
	return g.Col == to.Col && between(g.Row, from.Row, to.Row)
}

// verticalFirstCrossesGap is the mirror of horizontalFirstCrossesGap: column
// from.Col first, then row to.Row.
func (k *Keypad) verticalFirstCrossesGap(from, to Coord) bool {
	g := k.gap
	if g.Col == from.Col && between(g.Row, from.Row, to.Row) {
		return true
	}
	return g.Row == to.Row && between(g.Col, from.Col, to.Col)
}

// usable reports whether c is an in-bounds, non-gap cell.
func (k *Keypad) usable(c Coord) bool {
	return k.InBounds(c) && c != k.gap
}

// run repeats pos n times when n > 0, neg |n| times when n < 0.
func run(pos, neg Button, n int) string {
	switch {
	case n > 0:
		return strings.Repeat(pos.String(), n)
	case n < 0:
		return strings.Repeat(neg.String(), abs(n))
	default:
		return ""
	}
}

// between reports whether v lies in the closed interval spanned by a and b.
func between[T constraints.Integer](v, a, b T) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}

// abs returns the absolute value of a signed integer.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
