// SPDX-License-Identifier: MIT

// Package distance provides pluggable string distances for the magnitude
// engine.
//
// Every Provider maps a pair of strings to a finite, non-negative,
// symmetric distance with Distance(a, a) == 0. Overlap ratios in [0,1] are
// mapped to [0, MaxDistance] through d = -ln(1 - x + ε), capped at
// MaxDistance when the inputs share nothing, so exp(-d) never underflows to
// an exact zero and never sees +Inf.
//
// Built-in providers, selectable by name through ByName:
//
//	edit    — normalized Levenshtein over runes, memoized in a bounded LRU
//	cosine  — case-folded word-set Jaccard ("jaccard" is an alias)
//	ngram   — character trigram Jaccard (size configurable with NewNGram)
//
// Callers plug their own metric with Func:
//
//	p := distance.Func(func(a, b string) float64 { ... })
package distance
