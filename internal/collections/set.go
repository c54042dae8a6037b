package collections

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a generic set data structure using a map with zero-size values
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set with the given initial values
func NewSet[T comparable](vs ...T) Set[T] {
	s := Set[T]{}
	s.Add(vs...)
	return s
}

// Add adds one or more values to the set
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Has checks if the set contains the given value
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Members returns all values in the set as a slice
func (s Set[T]) Members() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	return r
}

// String returns a string representation of the set
func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}

// Keywords is an ASCII case-insensitive set of CSS keywords which remembers
// the canonical spelling of each member.
type Keywords struct {
	canonical map[string]string
	order     []string
}

// NewKeywords creates a keyword set; the given spellings are canonical
func NewKeywords(words ...string) Keywords {
	k := Keywords{canonical: make(map[string]string, len(words))}
	for _, w := range words {
		if _, dup := k.canonical[strings.ToLower(w)]; dup {
			continue
		}
		k.canonical[strings.ToLower(w)] = w
		k.order = append(k.order, w)
	}
	return k
}

// Lookup returns the canonical spelling of word, matched case-insensitively
func (k Keywords) Lookup(word string) (string, bool) {
	c, ok := k.canonical[strings.ToLower(word)]
	return c, ok
}

// Has reports whether word is a member, ignoring ASCII case
func (k Keywords) Has(word string) bool {
	_, ok := k.Lookup(word)
	return ok
}

// Words returns the canonical spellings in declaration order
func (k Keywords) Words() []string {
	return append([]string(nil), k.order...)
}

// Sorted returns the canonical spellings in lexical order
func (k Keywords) Sorted() []string {
	out := k.Words()
	sort.Strings(out)
	return out
}

// Len returns the number of keywords
func (k Keywords) Len() int {
	return len(k.order)
}

// String lists the keywords separated by " | ", the way CSS grammars spell
// alternatives
func (k Keywords) String() string {
	return strings.Join(k.order, " | ")
}
