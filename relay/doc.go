// Package relay computes how many presses a human must make on the top
// control pad of a chain of directional-keypad robots so that the numeric
// keypad at the bottom of the chain types a given code.
//
// What:
//
//   - Coster.Cost(from, to, level) is the fewest top-level presses that make
//     the directional pad at relay level `level` move its arm from `from` to
//     `to` and press it. Level 0 is typed by the human directly.
//   - Solver.PressCount drives a numeric code through the chain.
//   - Solver.Complexity and Scorer turn press counts into complexity sums.
//   - Solver.Presses materialises one optimal press string for small chains.
//
// Why it scales:
//
//	Every candidate path on a pad starts and ends with the arm above it resting
//	on A, so the cost of one transition depends only on (from, to, level).
//	Memoizing on that triple bounds the work at 5×5×(levels+1) entries no matter
//	how many codes are scored. Without the cache the recursion branches up to
//	twice per hop and 25 levels are out of reach.
//
// Recurrence:
//
//	cost(a, b, 0) = min |P|                               over candidates P(a→b)
//	cost(a, b, L) = min Σ cost(s[i], s[i+1], L-1)         over P, s = "A"+P
//	presses(code, N) = Σ_pairs min Σ cost(s[i], s[i+1], N-1)  over numeric P
//
// Concurrency:
//
//	A Cache is safe for concurrent use and may be shared by every Solver and
//	goroutine of a run. The first insertion of a key is final; concurrent
//	recomputation of the same key yields the same value and is discarded.
//
// Errors:
//
//   - ErrInvalidLevel: negative cost level, or fewer than one relay.
//   - ErrMalformedSequence: an input line is not digits followed by A.
//   - ErrOverflow: a press count or complexity does not fit in int64.
//   - ErrExpandTooDeep: Presses was asked for more than MaxExpandLevels relays.
//   - keypad.ErrUnknownButton propagates unchanged (wrapped with position).
package relay
