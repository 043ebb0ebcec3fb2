package sno

import (
	"bytes"
	"strings"

	"github.com/cspjst/sno/charset"
)

// valid reports whether v lies within the bound buffer.
func (s *Subject) valid(v View) bool {
	return s.Bound() && 0 <= v.Begin && v.Begin <= v.End && v.End <= s.length
}

// Bytes returns the bytes of v as a subslice of the bound buffer, without
// copying. The result must not be modified. It returns nil for a view that
// does not lie within the buffer.
func (s *Subject) Bytes(v View) []byte {
	if !s.valid(v) {
		return nil
	}
	return s.buf[v.Begin:v.End:v.End]
}

// Text returns the bytes of v as a string. Unlike the primitives it
// allocates.
func (s *Subject) Text(v View) string {
	return string(s.Bytes(v))
}

// Size returns the length of v (SNOBOL SIZE).
func (s *Subject) Size(v View) int {
	if !s.valid(v) {
		return 0
	}
	return v.Len()
}

// Equal reports whether the bytes of v equal lit.
func (s *Subject) Equal(v View, lit string) bool {
	return s.valid(v) && string(s.buf[v.Begin:v.End]) == lit
}

// Differ reports whether the bytes of v differ from lit.
// An invalid view differs from everything.
func (s *Subject) Differ(v View, lit string) bool {
	return !s.Equal(v, lit)
}

// Compare compares the bytes of a and b lexically and returns -1, 0 or +1.
func (s *Subject) Compare(a, b View) int {
	return bytes.Compare(s.Bytes(a), s.Bytes(b))
}

// Trim returns v narrowed by removing leading and trailing members of set
// (SNOBOL TRIM generalized to any set).
func (s *Subject) Trim(v View, set *charset.Set) View {
	if !s.valid(v) || set == nil {
		return v
	}
	for v.Begin < v.End && set.Contains(s.buf[v.Begin]) {
		v.Begin++
	}
	for v.End > v.Begin && set.Contains(s.buf[v.End-1]) {
		v.End--
	}
	return v
}

// Replace copies v into dst, translating every byte found in from into the
// byte at the same index of to (SNOBOL REPLACE). from and to must have equal
// length. It fails without writing when dst is smaller than v.
func (s *Subject) Replace(dst []byte, v View, from, to string) (int, bool) {
	if !s.valid(v) || len(from) != len(to) || len(dst) < v.Len() {
		return 0, false
	}
	for i, b := range s.buf[v.Begin:v.End] {
		if j := strings.IndexByte(from, b); j >= 0 {
			b = to[j]
		}
		dst[i] = b
	}
	return v.Len(), true
}

// Dupl writes n copies of v into dst (SNOBOL DUPL). It fails without writing
// when n is negative or dst is too small.
func (s *Subject) Dupl(dst []byte, v View, n int) (int, bool) {
	if !s.valid(v) || n < 0 {
		return 0, false
	}
	size := v.Len()
	if size != 0 && n > len(dst)/size {
		return 0, false
	}
	src := s.buf[v.Begin:v.End]
	for i := 0; i < n; i++ {
		copy(dst[i*size:], src)
	}
	return n * size, true
}
