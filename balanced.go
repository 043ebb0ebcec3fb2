package sno

import "github.com/cspjst/sno/internal/swar"

// Balanced matches a non-empty, properly nested span that starts with open
// and ends with the matching close, both delimiters included.
//
//	s.BindString("(a(b)c)d")
//	s.Balanced('(', ')') // view covers "(a(b)c)"
//
// The scan keeps a nesting level instead of recursing, so input depth never
// touches the goroutine stack and nothing is allocated. Runs of bytes that are
// neither delimiter are skipped word-at-a-time. An unmatched open or the end
// of the buffer before the final close fails the whole attempt and leaves the
// subject untouched.
//
// When open == close the matcher degenerates to a quoted span: the first
// repeated delimiter closes it.
func (s *Subject) Balanced(open, close byte) bool {
	if !s.Bound() {
		return false
	}
	at := s.origin()
	if at >= s.length || s.buf[at] != open {
		return false
	}
	end, ok := s.balancedEnd(at, open, close)
	if !ok {
		return false
	}
	return s.commit(at, end)
}

// balancedEnd returns the offset just past the close that matches the open
// delimiter at start. The close test comes first so that open == close
// closes at the next delimiter.
func (s *Subject) balancedEnd(start int, open, close byte) (int, bool) {
	level := 1
	for pos := start + 1; pos < s.length; {
		switch s.buf[pos] {
		case close:
			level--
			if level == 0 {
				return pos + 1, true
			}
			pos++
		case open:
			level++
			pos++
		default:
			i := swar.Memchr2(s.buf[pos:s.length], open, close)
			if i < 0 {
				return 0, false
			}
			pos += i
		}
	}
	return 0, false
}
