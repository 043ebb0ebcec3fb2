package sno

// Mark sets the capture anchor to the cursor. No matching primitive moves
// the mark; only Mark, Reset and Bind do.
func (s *Subject) Mark() bool {
	if !s.Bound() {
		return false
	}
	s.mark = s.view.End
	return true
}

// Capture copies [mark, cursor) into dst followed by a NUL terminator and
// returns the number of bytes copied, excluding the terminator.
//
// It fails without writing when dst has no room for the span plus the
// terminator, or when the mark lies after the cursor. The view and the mark
// are never changed.
func (s *Subject) Capture(dst []byte) (int, bool) {
	if !s.Bound() {
		return 0, false
	}
	return s.extract(dst, s.mark, s.view.End)
}

// ExtractView copies the current view [Begin, End) into dst followed by a NUL
// terminator. It has the same contract as Capture but needs no prior Mark.
func (s *Subject) ExtractView(dst []byte) (int, bool) {
	if !s.Bound() {
		return 0, false
	}
	return s.extract(dst, s.view.Begin, s.view.End)
}

// MatchAndExtract matches Len(n) and extracts the matched bytes into dst as
// one atomic step. If the extraction fails the view is rolled back, so a
// failed MatchAndExtract leaves the subject exactly as it found it.
func (s *Subject) MatchAndExtract(n int, dst []byte) (int, bool) {
	if !s.Bound() {
		return 0, false
	}
	saved := s.view
	if !s.Len(n) {
		return 0, false
	}
	copied, ok := s.ExtractView(dst)
	if !ok {
		s.view = saved
		return 0, false
	}
	return copied, true
}

func (s *Subject) extract(dst []byte, begin, end int) (int, bool) {
	n := end - begin
	if n < 0 || n >= len(dst) {
		return 0, false
	}
	copy(dst, s.buf[begin:end])
	dst[n] = 0
	return n, true
}
