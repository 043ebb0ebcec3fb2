// Package literal provides multi-literal sets for the string-valued pattern
// primitives.
//
// A Set is an ordered list of alternative byte strings (SNOBOL's
// 'cat' | 'dog' | 'bird') compiled once into an Aho-Corasick automaton.
// The order of the alternatives is significant: LitAny commits to the first
// alternative, in declaration order, that matches at the cursor.
//
// Sets are immutable after NewSet and safe for concurrent use.
package literal

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

var (
	// ErrEmptySet is returned by NewSet when no patterns are given.
	ErrEmptySet = errors.New("literal: empty set")

	// ErrEmptyPattern is returned by NewSet when a pattern is the empty string.
	// An empty alternative would match everywhere with zero width.
	ErrEmptyPattern = errors.New("literal: empty pattern")
)

// Set is an ordered set of alternative literals.
type Set struct {
	patterns [][]byte
	minLen   int
	auto     *ahocorasick.Automaton
}

// NewSet compiles the given alternatives into a Set.
//
// Example:
//
//	days, err := literal.NewSet("MON", "TUE", "WED")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewSet(words ...string) (*Set, error) {
	if len(words) == 0 {
		return nil, ErrEmptySet
	}

	s := &Set{patterns: make([][]byte, 0, len(words))}
	builder := ahocorasick.NewBuilder()
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("pattern %d: %w", i, ErrEmptyPattern)
		}
		p := []byte(w)
		s.patterns = append(s.patterns, p)
		builder.AddPattern(p)
		if s.minLen == 0 || len(p) < s.minLen {
			s.minLen = len(p)
		}
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("literal: build automaton: %w", err)
	}
	s.auto = auto
	return s, nil
}

// MustNewSet is like NewSet but panics on error.
// It is intended for package-level set declarations.
func MustNewSet(words ...string) *Set {
	s, err := NewSet(words...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of alternatives.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Prefix reports whether haystack starts with one of the alternatives.
// The first alternative in declaration order wins; n is its length.
func (s *Set) Prefix(haystack []byte) (n int, ok bool) {
	if s == nil || len(haystack) < s.minLen {
		return 0, false
	}
	for _, p := range s.patterns {
		if bytes.HasPrefix(haystack, p) {
			return len(p), true
		}
	}
	return 0, false
}

// Index returns the position of the first alternative occurrence reported by
// the automaton at or after at, or (-1, -1) if none occurs.
func (s *Set) Index(haystack []byte, at int) (start, end int) {
	if s == nil || at < 0 || at > len(haystack)-s.minLen {
		return -1, -1
	}
	m := s.auto.Find(haystack, at)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}
