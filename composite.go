package sno

import "github.com/cspjst/sno/charset"

var nonDigits = charset.Digits.Complement()

// Whitespace0 matches zero or more whitespace bytes. It always succeeds on a
// bound subject; with no whitespace at the cursor it records an empty match.
func (s *Subject) Whitespace0() bool {
	if s.Span(charset.Whitespace) {
		return true
	}
	if !s.Bound() {
		return false
	}
	at := s.origin()
	return s.commit(at, at)
}

// Whitespace1 matches one or more whitespace bytes.
func (s *Subject) Whitespace1() bool {
	return s.Span(charset.Whitespace)
}

// Digits matches one or more ASCII digits.
func (s *Subject) Digits() bool {
	return s.Span(charset.Digits)
}

// Digits0 matches zero or more ASCII digits.
func (s *Subject) Digits0() bool {
	return s.Break(nonDigits)
}

// Letters matches one or more ASCII letters.
func (s *Subject) Letters() bool {
	return s.Span(charset.Letters)
}

// Ident matches one or more identifier bytes: letters, digits and underscore.
func (s *Subject) Ident() bool {
	return s.Span(charset.AlnumU)
}

// HexDigits matches one or more hexadecimal digits.
func (s *Subject) HexDigits() bool {
	return s.Span(charset.HexDigits)
}
