package keypad

// Kind selects one of the two fixed keypad layouts.
type Kind int

const (
	// Numeric is the 3×4 door keypad: digits 0-9 plus A, gap bottom-left.
	Numeric Kind = iota
	// Directional is the 3×2 control pad: ^ v < > plus A, gap top-left.
	Directional
)

// String returns the lower-case layout name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Directional:
		return "directional"
	default:
		return "unknown"
	}
}

// Button is a single keypad symbol.
type Button byte

// Symbols shared by both alphabets or specific to the directional pad.
const (
	// Activate presses the button under the arm. It is also the resting position.
	Activate Button = 'A'
	Up       Button = '^'
	Down     Button = 'v'
	Left     Button = '<'
	Right    Button = '>'
)

// String returns the button as a one-character string.
func (b Button) String() string { return string(rune(b)) }

// Coord is a cell position: Col grows to the right, Row grows downward.
type Coord struct {
	Col, Row int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

// Path is a raw move string between two buttons, terminated by Activate.
// Every Path produced by this package is monotone: all horizontal moves are
// contiguous and all vertical moves are contiguous.
type Path string

// Len returns the number of presses the path costs, activate included.
func (p Path) Len() int { return len(p) }

// Buttons returns the path as a slice of buttons.
func (p Path) Buttons() []Button {
	out := make([]Button, len(p))
	for i := 0; i < len(p); i++ {
		out[i] = Button(p[i])
	}
	return out
}

// Keypad is an immutable button grid with exactly one gap cell.
// Width and Height bound the grid; coords maps every valid button to its cell
// and cells is the row-major inverse (zero Button marks the gap).
type Keypad struct {
	kind   Kind
	width  int
	height int
	gap    Coord
	coords map[Button]Coord
	cells  []Button
}
