package sno

import (
	"fmt"
	"io"
)

// Fprint writes the bytes of v followed by a newline.
func (s *Subject) Fprint(w io.Writer, v View) error {
	if !s.valid(v) {
		return fmt.Errorf("sno: view [%d,%d) outside subject of length %d", v.Begin, v.End, s.Length())
	}
	if _, err := w.Write(s.buf[v.Begin:v.End]); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Dump writes the buffer and all match state, one field per line.
func (s *Subject) Dump(w io.Writer) error {
	if !s.Bound() {
		_, err := io.WriteString(w, "unbound\n")
		return err
	}
	_, err := fmt.Fprintf(w, "%q\nview [%d,%d) %q\nmark %d\ncursor %d\nlength %d\nmode %s\n",
		s.buf[:s.length],
		s.view.Begin, s.view.End, s.buf[s.view.Begin:s.view.End],
		s.mark, s.view.End, s.length, s.mode)
	return err
}

// String implements fmt.Stringer for log lines.
func (s *Subject) String() string {
	if !s.Bound() {
		return "sno.Subject{unbound}"
	}
	return fmt.Sprintf("sno.Subject{len=%d view=[%d,%d) mark=%d %s}",
		s.length, s.view.Begin, s.view.End, s.mark, s.mode)
}
