package keypad_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keyrelay/keypad"
)

//----------------------------------------------------------------------------//
// Coordinate lookup
//----------------------------------------------------------------------------//

// TestCoordinate_Numeric checks every numeric button against the fixed layout.
func TestCoordinate_Numeric(t *testing.T) {
	want := map[keypad.Button]keypad.Coord{
		'7': {0, 0}, '8': {1, 0}, '9': {2, 0},
		'4': {0, 1}, '5': {1, 1}, '6': {2, 1},
		'1': {0, 2}, '2': {1, 2}, '3': {2, 2},
		'0': {1, 3}, 'A': {2, 3},
	}
	for b, c := range want {
		got, err := keypad.Coordinate(b, keypad.Numeric)
		require.NoError(t, err, "button %q", b)
		assert.Equal(t, c, got, "button %q", b)
	}
}

// TestCoordinate_Directional checks every directional button against the fixed layout.
func TestCoordinate_Directional(t *testing.T) {
	want := map[keypad.Button]keypad.Coord{
		keypad.Up: {1, 0}, keypad.Activate: {2, 0},
		keypad.Left: {0, 1}, keypad.Down: {1, 1}, keypad.Right: {2, 1},
	}
	for b, c := range want {
		got, err := keypad.Coordinate(b, keypad.Directional)
		require.NoError(t, err, "button %q", b)
		assert.Equal(t, c, got, "button %q", b)
	}
}

// TestCoordinate_UnknownButton verifies that symbols from the other alphabet
// and garbage are rejected with ErrUnknownButton.
func TestCoordinate_UnknownButton(t *testing.T) {
	cases := []struct {
		name string
		b    keypad.Button
		kind keypad.Kind
	}{
		{"ArrowOnNumeric", keypad.Up, keypad.Numeric},
		{"DigitOnDirectional", '5', keypad.Directional},
		{"Lowercase", 'a', keypad.Numeric},
		{"Zero", 0, keypad.Directional},
		{"UnknownKind", 'A', keypad.Kind(42)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := keypad.Coordinate(tc.b, tc.kind)
			if !errors.Is(err, keypad.ErrUnknownButton) {
				t.Errorf("Coordinate(%q, %s) error = %v; want ErrUnknownButton", tc.b, tc.kind, err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Grid geometry
//----------------------------------------------------------------------------//

// TestLayoutGeometry verifies dimensions, gap placement and ButtonAt.
func TestLayoutGeometry(t *testing.T) {
	num := keypad.NumericPad()
	assert.Equal(t, keypad.Numeric, num.Kind())
	assert.Equal(t, 3, num.Width())
	assert.Equal(t, 4, num.Height())
	assert.Equal(t, keypad.Coord{Col: 0, Row: 3}, num.Gap())

	dir := keypad.DirectionalPad()
	assert.Equal(t, keypad.Directional, dir.Kind())
	assert.Equal(t, 3, dir.Width())
	assert.Equal(t, 2, dir.Height())
	assert.Equal(t, keypad.Coord{Col: 0, Row: 0}, dir.Gap())

	for _, kp := range []*keypad.Keypad{num, dir} {
		_, ok := kp.ButtonAt(kp.Gap())
		assert.False(t, ok, "%s gap must not hold a button", kp.Kind())
		assert.True(t, kp.InBounds(kp.Gap()), "%s gap lies inside the grid", kp.Kind())
		assert.False(t, kp.InBounds(keypad.Coord{Col: -1, Row: 0}))
		assert.False(t, kp.InBounds(keypad.Coord{Col: 0, Row: kp.Height()}))

		for _, b := range kp.Buttons() {
			c, err := kp.Coordinate(b)
			require.NoError(t, err)
			got, ok := kp.ButtonAt(c)
			assert.True(t, ok)
			assert.Equal(t, b, got, "ButtonAt(Coordinate(%q))", b)
		}
	}
}

// TestButtons checks row-major order and alphabet size.
func TestButtons(t *testing.T) {
	assert.Equal(t, "7894561230A", string(buttonsString(keypad.NumericPad().Buttons())))
	assert.Equal(t, "^A<v>", string(buttonsString(keypad.DirectionalPad().Buttons())))
	assert.True(t, keypad.DirectionalPad().Has(keypad.Activate))
	assert.False(t, keypad.DirectionalPad().Has('0'))
	assert.Nil(t, keypad.For(keypad.Kind(-1)))
	assert.Equal(t, "unknown", keypad.Kind(7).String())
}

func buttonsString(bs []keypad.Button) []byte {
	out := make([]byte, len(bs))
	for i, b := range bs {
		out[i] = byte(b)
	}
	return out
}
