// SPDX-License-Identifier: MIT

package distance

import (
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity bounds the Levenshtein memo of NewEdit.
const DefaultCacheCapacity = 4096

// CacheObserver receives memo hits and misses. Implementations must be safe
// for concurrent use.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// pairKey is the canonical unordered pair: a <= b lexicographically, so
// (x,y) and (y,x) share one cache slot.
type pairKey struct {
	a, b string
}

func newPairKey(x, y string) pairKey {
	if x > y {
		x, y = y, x
	}

	return pairKey{a: x, b: y}
}

// Edit is the default provider: normalized Levenshtein distance over runes,
// lev(a,b) / max(|a|,|b|), passed through the -ln transform.
//
// Raw edit distances are memoized in a fixed-capacity LRU owned by the
// instance. The cache is best effort: a miss recomputes, an eviction never
// changes results. Safe for concurrent use.
type Edit struct {
	cache    *lru.Cache[pairKey, int] // nil when memoization is disabled
	observer CacheObserver
}

// EditOption configures NewEdit.
type EditOption func(*editOptions)

type editOptions struct {
	capacity int
	observer CacheObserver
}

// WithCacheCapacity sets the LRU size; 0 disables memoization.
func WithCacheCapacity(n int) EditOption {
	return func(o *editOptions) { o.capacity = n }
}

// WithCacheObserver reports cache hits and misses to obs.
func WithCacheObserver(obs CacheObserver) EditOption {
	return func(o *editOptions) { o.observer = obs }
}

// NewEdit builds an Edit provider.
//
// Errors: ErrInvalidCapacity for a negative capacity.
func NewEdit(opts ...EditOption) (*Edit, error) {
	o := editOptions{capacity: DefaultCacheCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	e := &Edit{observer: o.observer}
	if o.capacity > 0 {
		c, err := lru.New[pairKey, int](o.capacity)
		if err != nil {
			return nil, err
		}
		e.cache = c
	}

	return e, nil
}

// Distance implements Provider.
func (e *Edit) Distance(a, b string) float64 {
	if a == b {
		return 0
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := max(la, lb)
	if longest == 0 {
		return 0
	}

	return logTransform(float64(e.levenshtein(a, b)) / float64(longest))
}

// Normalized returns lev(a,b)/max(|a|,|b|) in [0,1] without the transform.
func (e *Edit) Normalized(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}

	return float64(e.levenshtein(a, b)) / float64(longest)
}

// CacheLen reports the number of memoized pairs.
func (e *Edit) CacheLen() int {
	if e.cache == nil {
		return 0
	}

	return e.cache.Len()
}

// Purge drops every memoized pair.
func (e *Edit) Purge() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

func (e *Edit) levenshtein(a, b string) int {
	if e.cache == nil {
		return Levenshtein(a, b)
	}
	key := newPairKey(a, b)
	if d, ok := e.cache.Get(key); ok {
		if e.observer != nil {
			e.observer.CacheHit()
		}

		return d
	}
	if e.observer != nil {
		e.observer.CacheMiss()
	}
	d := Levenshtein(key.a, key.b)
	e.cache.Add(key, d)

	return d
}

// Levenshtein returns the rune-level edit distance between a and b
// (unit-cost insert, delete, substitute). Two rolling rows keep memory at
// O(min(|a|,|b|)).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	var i, j, cost int
	for i = 1; i <= len(ra); i++ {
		curr[0] = i
		for j = 1; j <= len(rb); j++ {
			cost = 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
