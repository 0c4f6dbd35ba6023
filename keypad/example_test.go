// File: keypad/example_test.go
package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/keyrelay/keypad"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Paths
////////////////////////////////////////////////////////////////////////////////

// ExampleKeypad_Paths lists the candidate move sequences between buttons.
// Scenario:
//
//   - 2 → 9 on the numeric pad: both orders stay clear of the gap.
//   - A → 1 on the numeric pad: going left first would cross the gap at (0,3),
//     so only the up-first route remains.
//   - A → < on the directional pad: left-first would cross the gap at (0,0).
func ExampleKeypad_Paths() {
	num := keypad.NumericPad()
	dir := keypad.DirectionalPad()

	p, _ := num.Paths('2', '9')
	fmt.Println(p)
	p, _ = num.Paths('A', '1')
	fmt.Println(p)
	p, _ = dir.Paths(keypad.Activate, keypad.Left)
	fmt.Println(p)

	// Output:
	// [>^^A ^^>A]
	// [^<<A]
	// [v<<A]
}

// ExampleKeypad_Expand decodes one level of a relay chain.
func ExampleKeypad_Expand() {
	typed, _ := keypad.NumericPad().Expand(keypad.Activate, "<A^A>^^AvvvA")
	fmt.Println(typed)

	// Output:
	// 029A
}
