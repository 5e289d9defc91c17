// SPDX-License-Identifier: MIT

package distance

import (
	"strings"
)

// DefaultNGramSize is the gram length used by ByName("ngram").
const DefaultNGramSize = 3

// NGram compares lower-cased character n-gram sets with Jaccard overlap.
// A non-empty string shorter than n contributes itself as its only gram.
type NGram struct {
	n int
}

// NewNGram returns an n-gram provider.
//
// Errors: ErrInvalidNGramSize when n < 1.
func NewNGram(n int) (NGram, error) {
	if n < 1 {
		return NGram{}, ErrInvalidNGramSize
	}

	return NGram{n: n}, nil
}

// Size returns the gram length. The zero NGram uses DefaultNGramSize.
func (g NGram) Size() int {
	if g.n < 1 {
		return DefaultNGramSize
	}

	return g.n
}

// Distance implements Provider.
func (g NGram) Distance(a, b string) float64 {
	if a == b {
		return 0
	}

	return jaccardDistance(g.grams(a), g.grams(b))
}

func (g NGram) grams(s string) map[string]struct{} {
	n := g.Size()
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return nil
	}
	if len(r) < n {
		return map[string]struct{}{string(r): {}}
	}
	set := make(map[string]struct{}, len(r)-n+1)
	for i := 0; i+n <= len(r); i++ {
		set[string(r[i:i+n])] = struct{}{}
	}

	return set
}
