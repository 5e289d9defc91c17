// SPDX-License-Identifier: MIT

package distance

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Cosine is the token-set provider: case-folded word sets compared with
// Jaccard overlap and passed through the -ln transform. It approximates a
// bag-of-words cosine without term weights.
//
// Words are maximal runs of letters and digits. A side with no words yields
// MaxDistance unless both strings are identical.
type Cosine struct{}

// NewCosine returns the token-set provider.
func NewCosine() Cosine { return Cosine{} }

// Distance implements Provider.
func (Cosine) Distance(a, b string) float64 {
	if a == b {
		return 0
	}

	return jaccardDistance(wordSet(a), wordSet(b))
}

// wordSet returns the set of case-folded words in s.
// cases.Caser is stateful, so each call builds its own.
func wordSet(s string) map[string]struct{} {
	folded := cases.Fold().String(s)
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}
