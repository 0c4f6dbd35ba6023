package keypad

import (
	"container/list"
	"fmt"
	"strings"
)

// moveOffsets maps each direction symbol to its cell offset.
var moveOffsets = map[Button]Coord{
	Up:    {Col: 0, Row: -1},
	Down:  {Col: 0, Row: 1},
	Left:  {Col: -1, Row: 0},
	Right: {Col: 1, Row: 0},
}

// Walk replays path p starting at button from and returns every cell the arm
// occupies, starting cell included. Activate does not move the arm.
// Returns ErrUnknownButton, ErrBadMove, ErrOutOfBounds or ErrGapCrossed,
// each wrapped with the offending step.
// Complexity: O(len(p)).
func (k *Keypad) Walk(from Button, p Path) ([]Coord, error) {
	pos, err := k.Coordinate(from)
	if err != nil {
		return nil, err
	}
	visited := make([]Coord, 1, len(p)+1)
	visited[0] = pos
	for i := 0; i < len(p); i++ {
		sym := Button(p[i])
		if sym == Activate {
			continue
		}
		next, err := k.step(pos, sym, i)
		if err != nil {
			return visited, err
		}
		pos = next
		visited = append(visited, pos)
	}

	return visited, nil
}

// Expand decodes presses made on this keypad, starting with the arm over
// button from, into the buttons activated. Typing the result of Expand on the
// next keypad down is what a relay chain does one level at a time.
//
// Example: DirectionalPad().Expand('A', "<A>A") == "^A".
// Complexity: O(len(presses)).
func (k *Keypad) Expand(from Button, presses string) (string, error) {
	pos, err := k.Coordinate(from)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 0; i < len(presses); i++ {
		sym := Button(presses[i])
		if sym == Activate {
			b, _ := k.ButtonAt(pos)
			sb.WriteByte(byte(b))
			continue
		}
		if pos, err = k.step(pos, sym, i); err != nil {
			return sb.String(), err
		}
	}

	return sb.String(), nil
}

// step moves pos by one direction symbol and rejects gap or off-grid cells.
func (k *Keypad) step(pos Coord, sym Button, i int) (Coord, error) {
	d, ok := moveOffsets[sym]
	if !ok {
		return pos, fmt.Errorf("%w: %q at step %d", ErrBadMove, sym, i)
	}
	next := pos.Add(d)
	if !k.InBounds(next) {
		return pos, fmt.Errorf("%w: %s keypad step %d to (%d,%d)", ErrOutOfBounds, k.kind, i, next.Col, next.Row)
	}
	if next == k.gap {
		return pos, fmt.Errorf("%w: %s keypad step %d to (%d,%d)", ErrGapCrossed, k.kind, i, next.Col, next.Row)
	}
	return next, nil
}

// Distance returns the fewest arm moves between two buttons, never entering
// the gap. Routes does not call it; it exists to check that the enumerated
// monotone candidates really are shortest.
//
// Behavior: plain breadth-first search from the source cell over the four
// orthogonal neighbours, skipping the gap.
// Complexity: O(W×H), Memory: O(W×H).
func (k *Keypad) Distance(from, to Button) (int, error) {
	src, err := k.Coordinate(from)
	if err != nil {
		return 0, err
	}
	dst, err := k.Coordinate(to)
	if err != nil {
		return 0, err
	}

	n := k.width * k.height
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[k.index(src)] = 0

	q := list.New()
	q.PushBack(k.index(src))
	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		u := e.Value.(int)
		if u == k.index(dst) {
			return dist[u], nil
		}
		uc := k.coordOf(u)
		for _, d := range moveOffsets {
			vc := uc.Add(d)
			if !k.usable(vc) {
				continue
			}
			v := k.index(vc)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			q.PushBack(v)
		}
	}

	return 0, fmt.Errorf("%w: %q to %q on %s keypad", ErrNoPath, from, to, k.kind)
}
