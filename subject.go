// Package sno provides a zero-copy, SNOBOL4-inspired pattern-matching engine.
//
// A Subject binds an immutable byte buffer and carries a cursor that advances
// under composable primitive matchers: literals, lengths, character-set
// span/break/any/notany, absolute and relative tabbing, remainder and
// balanced delimiters. Patterns are methods; composition is native control
// flow: && sequences, || alternates.
//
//	var s sno.Subject
//	s.BindString("host=alpha")
//	if s.Span(charset.AlnumU) && s.Lit('=') && s.Mark() && s.Break(charset.CRLF) {
//	    fmt.Println(s.Text(s.View())) // alpha
//	}
//
// Every primitive honors one contract: it consumes from the current cursor,
// reports success or failure, and mutates the Subject only on success. A
// failed primitive leaves the view and mark exactly as they were, so the next
// alternative of an || chain starts from the same place.
//
// Matching is fail-fast and non-backtracking. There is no scanning mode that
// retries a pattern at increasing start positions, no regular-expression
// compilation step, and no allocation during matching. Character sets are
// single-byte membership tests.
//
// A Subject is not safe for concurrent use. The bound buffer is only read and
// may be shared by any number of Subjects.
package sno

import (
	"unsafe"

	"github.com/cspjst/sno/internal/swar"
)

// View is a half-open span [Begin, End) of offsets into the bound buffer.
type View struct {
	Begin int
	End   int
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return v.End - v.Begin
}

// Empty reports whether the view spans no bytes.
func (v View) Empty() bool {
	return v.Begin == v.End
}

// Mode selects where matching starts.
type Mode uint8

const (
	// Unanchored matches from the live cursor (the end of the current view).
	Unanchored Mode = iota

	// Anchored matches every attempt from the start of the buffer. The
	// persistent cursor does not advance between attempts.
	Anchored
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Anchored {
		return "anchored"
	}
	return "unanchored"
}

// Subject is the matching context: the bound buffer plus all match state.
//
// The zero value is an unbound Subject on which every primitive fails.
type Subject struct {
	buf    []byte // bound buffer, visible range is buf[:length]
	view   View   // most recent match; view.End is the cursor
	mark   int    // capture anchor
	length int    // cached at bind time
	mode   Mode
	bound  bool
}

// Bind binds buf to the subject and discards all previous match state.
//
// The visible range ends at the first NUL byte of buf, or at len(buf) if buf
// holds none. The length is computed by that single scan and cached. Bind
// returns false and does nothing if s or buf is nil.
//
// buf must not be modified while it is bound.
func (s *Subject) Bind(buf []byte) bool {
	if s == nil || buf == nil {
		return false
	}
	length := swar.Memchr(buf, 0)
	if length < 0 {
		length = len(buf)
	}
	*s = Subject{
		buf:    buf[:length:length],
		length: length,
		bound:  true,
	}
	return true
}

// BindString binds the bytes of str without copying them.
func (s *Subject) BindString(str string) bool {
	if s == nil {
		return false
	}
	if len(str) == 0 {
		return s.Bind([]byte{})
	}
	return s.Bind(unsafe.Slice(unsafe.StringData(str), len(str)))
}

// Reset restores the view to the empty span at the start of the buffer and
// the mark to the start, keeping the buffer, length and mode.
func (s *Subject) Reset() bool {
	if s == nil {
		return false
	}
	s.view = View{}
	s.mark = 0
	return true
}

// Anchor switches to anchored mode and resets the subject, since anchored
// matching is defined relative to the true start.
//
// Every anchored attempt starts at offset 0 whatever the cursor says. A
// successful attempt still records its view, so Cursor, At and AtR report the
// end of the last anchored match, and Unanchor resumes from there.
func (s *Subject) Anchor() bool {
	if !s.Reset() {
		return false
	}
	s.mode = Anchored
	return true
}

// Unanchor switches back to matching from the live cursor. The view is kept.
func (s *Subject) Unanchor() bool {
	if s == nil {
		return false
	}
	s.mode = Unanchored
	return true
}

// Mode returns the current matching mode.
func (s *Subject) Mode() Mode {
	if s == nil {
		return Unanchored
	}
	return s.mode
}

// Bound reports whether a buffer is bound.
func (s *Subject) Bound() bool {
	return s != nil && s.bound
}

// Length returns the cached length of the bound buffer.
func (s *Subject) Length() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Str returns the view spanning the whole bound buffer.
func (s *Subject) Str() View {
	return View{Begin: 0, End: s.Length()}
}

// View returns the span of the most recent successful match.
func (s *Subject) View() View {
	if s == nil {
		return View{}
	}
	return s.view
}

// Cursor returns the offset where the next unanchored match begins. In
// anchored mode it is the end of the last anchored match.
func (s *Subject) Cursor() int {
	if s == nil {
		return 0
	}
	return s.view.End
}

// MarkPos returns the capture anchor offset.
func (s *Subject) MarkPos() int {
	if s == nil {
		return 0
	}
	return s.mark
}

// At reports whether the cursor sits at absolute offset n.
func (s *Subject) At(n int) bool {
	return s.Bound() && s.view.End == n
}

// AtR reports whether the cursor sits exactly n bytes before the end.
func (s *Subject) AtR(n int) bool {
	return s.Bound() && s.view.End == s.length-n
}

// origin returns the offset the next primitive matches from.
func (s *Subject) origin() int {
	if s.mode == Anchored {
		return 0
	}
	return s.view.End
}

// commit records a successful match of [begin, end).
func (s *Subject) commit(begin, end int) bool {
	s.view = View{Begin: begin, End: end}
	return true
}
