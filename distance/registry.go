// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in provider names accepted by ByName.
const (
	NameEdit    = "edit"
	NameCosine  = "cosine"
	NameJaccard = "jaccard" // alias of NameCosine
	NameNGram   = "ngram"
)

var constructors = map[string]func() (Provider, error){
	NameEdit: func() (Provider, error) { return NewEdit() },
	NameCosine: func() (Provider, error) {
		return NewCosine(), nil
	},
	NameJaccard: func() (Provider, error) {
		return NewCosine(), nil
	},
	NameNGram: func() (Provider, error) { return NewNGram(DefaultNGramSize) },
}

// ByName builds a built-in provider with default settings. Names are
// case-insensitive.
//
// Errors: ErrUnknownDistance.
func ByName(name string) (Provider, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownDistance)
	}

	return ctor()
}

// Names lists the accepted provider names in sorted order.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
