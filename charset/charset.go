// Package charset provides immutable single-byte membership sets for the
// character-class primitives (Any, NotAny, Span, Break).
//
// A Set is a 256-entry lookup table built once, ahead of matching. Membership
// is literal byte membership: there is no Unicode classification and no case
// folding. Sets are never mutated after construction and may be shared by any
// number of goroutines.
//
// The predeclared sets follow SNOBOL4 naming (LETTERS, DIGITS, ...):
//
//	s.Span(charset.Digits)
//	s.Break(charset.CRLF)
package charset

import (
	"strconv"
	"strings"
)

// Set is an immutable byte-membership set.
type Set struct {
	table [256]bool
	n     int
}

// Predeclared sets.
var (
	// Letters holds the ASCII letters A-Z and a-z.
	Letters = New("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

	// Digits holds the decimal digits 0-9.
	Digits = New("0123456789")

	// Alnum holds letters and digits.
	Alnum = New("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

	// AlnumU holds letters, digits and underscore (identifier characters).
	AlnumU = New("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_")

	// Whitespace holds space, tab, CR and LF.
	Whitespace = New(" \t\r\n")

	// OpSyms holds the SNOBOL operator symbols of the green book example.
	OpSyms = New("+-*/.$&@?#%!")

	// Punctuation holds common punctuation delimiters.
	Punctuation = New(".,;:!?\"'()[]{}")

	// HexDigits holds 0-9, A-F and a-f.
	HexDigits = New("0123456789ABCDEFabcdef")

	// CRLF holds the line terminators CR and LF.
	CRLF = New("\r\n")
)

// New returns the set of bytes occurring in chars.
// Duplicate bytes are ignored. New("") is the empty set.
func New(chars string) *Set {
	s := &Set{}
	for i := 0; i < len(chars); i++ {
		s.add(chars[i])
	}
	return s
}

// Of returns the set of the given bytes.
func Of(bs ...byte) *Set {
	s := &Set{}
	for _, b := range bs {
		s.add(b)
	}
	return s
}

func (s *Set) add(b byte) {
	if !s.table[b] {
		s.table[b] = true
		s.n++
	}
}

// Contains reports whether b is a member of the set.
// A nil set contains nothing.
func (s *Set) Contains(b byte) bool {
	return s != nil && s.table[b]
}

// Len returns the number of distinct bytes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Table exposes the lookup table for the scanning kernels.
// Callers must not modify it.
func (s *Set) Table() *[256]bool {
	if s == nil {
		return nil
	}
	return &s.table
}

// Union returns a new set holding the members of s and every set in others.
func (s *Set) Union(others ...*Set) *Set {
	u := &Set{}
	for _, set := range append([]*Set{s}, others...) {
		if set == nil {
			continue
		}
		for b := 0; b < 256; b++ {
			if set.table[b] {
				u.add(byte(b))
			}
		}
	}
	return u
}

// Complement returns the set of all bytes not in s.
func (s *Set) Complement() *Set {
	c := &Set{}
	for b := 0; b < 256; b++ {
		if !s.Contains(byte(b)) {
			c.add(byte(b))
		}
	}
	return c
}

// String returns the members in ascending byte order, quoted Go-style.
func (s *Set) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for b := 0; b < 256; b++ {
		if s.Contains(byte(b)) {
			sb.WriteByte(byte(b))
		}
	}
	return strconv.Quote(sb.String())
}
