package sno

import (
	"github.com/cspjst/sno/charset"
	"github.com/cspjst/sno/internal/swar"
)

// Lit matches exactly one byte equal to ch.
func (s *Subject) Lit(ch byte) bool {
	if !s.Bound() {
		return false
	}
	at := s.origin()
	if at >= s.length || s.buf[at] != ch {
		return false
	}
	return s.commit(at, at+1)
}

// LitString matches the exact byte string lit.
// The empty string matches with zero width.
func (s *Subject) LitString(lit string) bool {
	if !s.Bound() {
		return false
	}
	at := s.origin()
	if len(lit) > s.length-at || string(s.buf[at:at+len(lit)]) != lit {
		return false
	}
	return s.commit(at, at+len(lit))
}

// Len matches exactly n bytes. It fails if fewer than n bytes remain or n is
// negative. Len(0) matches with zero width.
func (s *Subject) Len(n int) bool {
	if !s.Bound() || n < 0 {
		return false
	}
	at := s.origin()
	if n > s.length-at {
		return false
	}
	return s.commit(at, at+n)
}

// Any matches exactly one byte that is a member of set.
func (s *Subject) Any(set *charset.Set) bool {
	if !s.Bound() || set == nil {
		return false
	}
	at := s.origin()
	if at >= s.length || !set.Contains(s.buf[at]) {
		return false
	}
	return s.commit(at, at+1)
}

// NotAny matches exactly one byte that is not a member of set.
func (s *Subject) NotAny(set *charset.Set) bool {
	if !s.Bound() || set == nil {
		return false
	}
	at := s.origin()
	if at >= s.length || set.Contains(s.buf[at]) {
		return false
	}
	return s.commit(at, at+1)
}

// Span matches the longest run of one or more bytes that are all in set.
// It fails when the byte at the cursor is not in set or the cursor is at the
// end.
func (s *Subject) Span(set *charset.Set) bool {
	if !s.Bound() || set == nil {
		return false
	}
	at := s.origin()
	n := swar.MemchrNotInTable(s.buf[at:], set.Table())
	switch {
	case n == 0:
		return false
	case n < 0:
		if at == s.length {
			return false
		}
		n = s.length - at
	}
	return s.commit(at, at+n)
}

// Break matches the longest run of zero or more bytes none of which is in
// set. It always succeeds on a bound subject, with zero width when the cursor
// already sits on a member of set, and runs to the end when no member
// follows.
func (s *Subject) Break(set *charset.Set) bool {
	if !s.Bound() || set == nil {
		return false
	}
	at := s.origin()
	n := swar.MemchrInTable(s.buf[at:], set.Table())
	if n < 0 {
		n = s.length - at
	}
	return s.commit(at, at+n)
}

// Tab moves the cursor to absolute offset n, matching the bytes in between.
//
// Tab never moves left. It fails when n lies before the cursor or beyond the
// end. A zero-width Tab (n equal to the cursor) makes no progress and only
// succeeds at the buffer boundaries, offset 0 and the end.
func (s *Subject) Tab(n int) bool {
	if !s.Bound() || n < 0 || n > s.length {
		return false
	}
	at := s.origin()
	switch {
	case n < at:
		return false
	case n == at && at != 0 && at != s.length:
		return false
	}
	return s.commit(at, n)
}

// RTab moves the cursor to offset Length()-n, matching the bytes in between.
// It fails when that offset lies before the cursor.
func (s *Subject) RTab(n int) bool {
	if !s.Bound() || n < 0 || n > s.length {
		return false
	}
	at := s.origin()
	to := s.length - n
	if to < at {
		return false
	}
	return s.commit(at, to)
}

// Rem matches everything from the cursor to the end, possibly nothing.
func (s *Subject) Rem() bool {
	if !s.Bound() {
		return false
	}
	return s.commit(s.origin(), s.length)
}
