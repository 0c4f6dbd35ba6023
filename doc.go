// Package keyrelay computes how many button presses a human needs to type a
// door code through a chain of robot-operated keypads.
//
// 🚀 What is keyrelay?
//
//	A small, concurrent, memoized solver that brings together:
//		• Keypad geometry: numeric and directional layouts with a gap cell
//		• Path enumeration: at most two monotone, gap-safe routes per move
//		• Level costs: a write-once (from, to, level) memo shared by goroutines
//		• Solving: press counts and the optimal press string for a code
//		• Scoring: complexity sums over many codes, with metrics and logs
//
// Everything is organized under these subpackages:
//
//	keypad/         layouts, coordinates, candidate paths, walking and expanding presses
//	relay/          level-cost memo, Solver, complexity parsing and the parallel Scorer
//	logging/        structured JSON logging with timed operations
//	metrics/        Prometheus collectors; implements relay.Observer
//	config/         YAML configuration with validation
//	cmd/keyrelay/   command-line front end
//
// Quick ASCII example, the two layouts (· is the gap):
//
//	+---+---+---+        +---+---+---+
//	| 7 | 8 | 9 |        | · | ^ | A |
//	+---+---+---+        +---+---+---+
//	| 4 | 5 | 6 |        | < | v | > |
//	+---+---+---+        +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	| · | 0 | A |
//	+---+---+---+
//
//	go get github.com/katalvlaran/keyrelay/relay
package keyrelay
