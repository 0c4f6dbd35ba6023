package keypad

import "fmt"

// Row-major button grids. A zero byte marks the gap.
var (
	numericRows = [][]Button{
		{'7', '8', '9'},
		{'4', '5', '6'},
		{'1', '2', '3'},
		{0, '0', Activate},
	}
	directionalRows = [][]Button{
		{0, Up, Activate},
		{Left, Down, Right},
	}
)

var (
	numericPad     = newKeypad(Numeric, numericRows)
	directionalPad = newKeypad(Directional, directionalRows)
)

// newKeypad builds a Keypad from a rectangular row-major grid containing
// exactly one zero cell. The layouts above are package constants, so a
// malformed grid is a programming error and panics at init.
func newKeypad(kind Kind, rows [][]Button) *Keypad {
	h, w := len(rows), len(rows[0])
	kp := &Keypad{
		kind:   kind,
		width:  w,
		height: h,
		coords: make(map[Button]Coord, w*h-1),
		cells:  make([]Button, 0, w*h),
	}
	gaps := 0
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("keypad: %s layout row %d has %d cells, want %d", kind, y, len(row), w))
		}
		for x, b := range row {
			kp.cells = append(kp.cells, b)
			if b == 0 {
				kp.gap = Coord{Col: x, Row: y}
				gaps++
				continue
			}
			kp.coords[b] = Coord{Col: x, Row: y}
		}
	}
	if gaps != 1 {
		panic(fmt.Sprintf("keypad: %s layout has %d gaps, want 1", kind, gaps))
	}

	return kp
}

// NumericPad returns the shared numeric keypad layout.
func NumericPad() *Keypad { return numericPad }

// DirectionalPad returns the shared directional keypad layout.
func DirectionalPad() *Keypad { return directionalPad }

// For returns the layout for kind, or nil for an unknown kind.
func For(kind Kind) *Keypad {
	switch kind {
	case Numeric:
		return numericPad
	case Directional:
		return directionalPad
	default:
		return nil
	}
}

// Coordinate looks up button on the layout selected by kind.
// Returns ErrUnknownButton if the symbol is not in that layout's alphabet.
func Coordinate(b Button, kind Kind) (Coord, error) {
	kp := For(kind)
	if kp == nil {
		return Coord{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownButton, b, kind)
	}
	return kp.Coordinate(b)
}

// Kind reports which layout this is.
func (k *Keypad) Kind() Kind { return k.kind }

// Width is the number of columns.
func (k *Keypad) Width() int { return k.width }

// Height is the number of rows.
func (k *Keypad) Height() int { return k.height }

// Gap returns the coordinate of the absent cell.
func (k *Keypad) Gap() Coord { return k.gap }

// Coordinate returns the cell of button b.
// Returns ErrUnknownButton (wrapped with the symbol and layout) otherwise.
// Complexity: O(1).
func (k *Keypad) Coordinate(b Button) (Coord, error) {
	c, ok := k.coords[b]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownButton, b, k.kind)
	}
	return c, nil
}

// Has reports whether b belongs to this keypad's alphabet.
func (k *Keypad) Has(b Button) bool {
	_, ok := k.coords[b]
	return ok
}

// InBounds reports whether c lies within the grid. The gap is in bounds.
// Complexity: O(1).
func (k *Keypad) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < k.width && c.Row >= 0 && c.Row < k.height
}

// ButtonAt returns the button at c; ok is false for the gap or out-of-bounds cells.
// Complexity: O(1).
func (k *Keypad) ButtonAt(c Coord) (Button, bool) {
	if !k.InBounds(c) {
		return 0, false
	}
	b := k.cells[k.index(c)]
	return b, b != 0
}

// Buttons returns every valid button in row-major order.
func (k *Keypad) Buttons() []Button {
	out := make([]Button, 0, len(k.coords))
	for _, b := range k.cells {
		if b != 0 {
			out = append(out, b)
		}
	}
	return out
}

// index maps c to a row-major index: Row*Width + Col.
func (k *Keypad) index(c Coord) int {
	return c.Row*k.width + c.Col
}

// coordOf converts a row-major index back to a Coord.
func (k *Keypad) coordOf(idx int) Coord {
	return Coord{Col: idx % k.width, Row: idx / k.width}
}
