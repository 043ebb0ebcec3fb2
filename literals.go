package sno

import "github.com/cspjst/sno/literal"

// LitAny matches the first alternative of set, in declaration order, that
// occurs at the cursor. Later alternatives are not retried once one has
// matched, even if a longer one would also fit.
func (s *Subject) LitAny(set *literal.Set) bool {
	if !s.Bound() || set.Len() == 0 {
		return false
	}
	at := s.origin()
	n, ok := set.Prefix(s.buf[at:s.length])
	if !ok {
		return false
	}
	return s.commit(at, at+n)
}

// BreakLit is Break with string delimiters: it matches every byte up to the
// first occurrence of an alternative of set, or to the end when none occurs.
// The delimiter itself is not consumed. Like Break it always succeeds on a
// bound subject.
func (s *Subject) BreakLit(set *literal.Set) bool {
	if !s.Bound() || set.Len() == 0 {
		return false
	}
	at := s.origin()
	start, _ := set.Index(s.buf[:s.length], at)
	if start < 0 {
		start = s.length
	}
	return s.commit(at, start)
}
