package relay

import (
	"fmt"

	"github.com/katalvlaran/keyrelay/keypad"
)

// Coster evaluates the memoized level cost of directional-pad transitions.
type Coster struct {
	pad      *keypad.Keypad
	cache    *Cache
	observer Observer
}

// NewCoster returns a Coster backed by cache. A nil cache gets a fresh one;
// a nil observer means NopObserver.
func NewCoster(cache *Cache, observer Observer) *Coster {
	if cache == nil {
		cache = NewCache()
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Coster{pad: keypad.DirectionalPad(), cache: cache, observer: observer}
}

// Cache returns the backing cache.
func (c *Coster) Cache() *Cache { return c.cache }

// Cost returns the fewest human presses that make the directional pad at
// relay level `level` move its arm from `from` to `to` and press `to`.
//
// Behavior:
//   - level == 0: the human types the move directly; the cost is the length
//     of the shortest candidate path.
//   - level > 0: each candidate path P must be typed by the pad one level up,
//     starting from rest on A; the cost is the cheapest Σ cost(s[i], s[i+1],
//     level-1) over s = "A"+P.
//
// Returns ErrInvalidLevel for level < 0, keypad.ErrUnknownButton for a
// non-directional symbol, ErrOverflow if the count exceeds int64.
// Complexity: O(1) amortised once the cache is warm; O(25·level) to fill it.
func (c *Coster) Cost(from, to keypad.Button, level int) (int64, error) {
	if level < 0 {
		return 0, fmt.Errorf("%w: cost level %d", ErrInvalidLevel, level)
	}
	t := Transition{From: from, To: to, Level: level}
	if v, ok := c.cache.Get(t); ok {
		c.observer.CacheLookup(true)
		return v, nil
	}
	c.observer.CacheLookup(false)

	paths, err := c.pad.Paths(from, to)
	if err != nil {
		return 0, err
	}
	var best int64
	if level == 0 {
		best = int64(paths[0].Len())
		for _, p := range paths[1:] {
			best = min(best, int64(p.Len()))
		}
	} else {
		if _, best, err = c.cheapest(paths, level-1); err != nil {
			return 0, err
		}
	}

	v := c.cache.Put(t, best)
	c.observer.CacheSize(c.cache.Len())
	return v, nil
}

// PathCost returns the presses needed for the pad at `level` to type path p,
// starting from rest on A: Σ cost(s[i], s[i+1], level) over s = "A"+p.
func (c *Coster) PathCost(p keypad.Path, level int) (int64, error) {
	prev := keypad.Activate
	var total int64
	for i := 0; i < len(p); i++ {
		next := keypad.Button(p[i])
		n, err := c.Cost(prev, next, level)
		if err != nil {
			return 0, err
		}
		if total, err = addCost(total, n); err != nil {
			return 0, fmt.Errorf("%w: path %q at level %d", err, p, level)
		}
		prev = next
	}
	return total, nil
}

// cheapest returns the candidate with the lowest PathCost at level and that
// cost. Ties keep the earlier candidate.
func (c *Coster) cheapest(paths []keypad.Path, level int) (keypad.Path, int64, error) {
	var (
		bestPath keypad.Path
		best     int64 = -1
	)
	for _, p := range paths {
		n, err := c.PathCost(p, level)
		if err != nil {
			return "", 0, err
		}
		if best < 0 || n < best {
			bestPath, best = p, n
		}
	}
	return bestPath, best, nil
}
