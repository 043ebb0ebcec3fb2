package sno

import "testing"

func TestBind(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		wantLen int
	}{
		{"empty", "", 0},
		{"hello", "hello", 5},
		{"nul terminated", "hello\x00", 5},
		{"nul in middle", "host\x00alpha", 4},
		{"leading nul", "\x00abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Subject
			if !s.Bind([]byte(tt.buf)) {
				t.Fatalf("Bind(%q) = false", tt.buf)
			}
			if s.Length() != tt.wantLen {
				t.Errorf("Length() = %d, want %d", s.Length(), tt.wantLen)
			}
			if s.View() != (View{}) {
				t.Errorf("View() = %+v, want empty at 0", s.View())
			}
			if s.MarkPos() != 0 || s.Cursor() != 0 {
				t.Errorf("mark=%d cursor=%d, want 0, 0", s.MarkPos(), s.Cursor())
			}
			if s.Str() != (View{0, tt.wantLen}) {
				t.Errorf("Str() = %+v", s.Str())
			}
		})
	}
}

func TestBindPreconditions(t *testing.T) {
	var nilSubject *Subject
	if nilSubject.Bind([]byte("x")) {
		t.Error("Bind on nil subject = true")
	}
	if nilSubject.BindString("x") {
		t.Error("BindString on nil subject = true")
	}

	var s Subject
	if s.Bind(nil) {
		t.Error("Bind(nil) = true")
	}
	if s.Bound() {
		t.Error("Bound() = true after Bind(nil)")
	}
}

func TestRebindDiscardsState(t *testing.T) {
	var s Subject
	s.BindString("abcdef")
	s.Len(3)
	s.Mark()
	s.Anchor()
	s.Len(2)

	s.BindString("xyz")
	if s.View() != (View{}) || s.MarkPos() != 0 || s.Mode() != Unanchored || s.Length() != 3 {
		t.Errorf("rebind left state behind: %s", s.String())
	}
}

func TestReset(t *testing.T) {
	var s Subject
	s.BindString("abcdef")
	if !s.Len(3) {
		t.Fatal("Len(3) failed")
	}
	if s.Cursor() != 3 {
		t.Fatalf("Cursor() = %d, want 3", s.Cursor())
	}
	s.Mark()
	if !s.Reset() {
		t.Fatal("Reset() = false")
	}
	if s.View() != (View{}) || s.MarkPos() != 0 {
		t.Errorf("after Reset view=%+v mark=%d", s.View(), s.MarkPos())
	}
	if s.Length() != 6 {
		t.Errorf("Reset changed length to %d", s.Length())
	}

	var nilSubject *Subject
	if nilSubject.Reset() {
		t.Error("Reset on nil subject = true")
	}
}

func TestUnboundSubjectFails(t *testing.T) {
	var s Subject
	checks := map[string]bool{
		"Lit":   s.Lit('a'),
		"Len":   s.Len(0),
		"Rem":   s.Rem(),
		"Tab":   s.Tab(0),
		"RTab":  s.RTab(0),
		"Mark":  s.Mark(),
		"At":    s.At(0),
		"AtR":   s.AtR(0),
		"WS0":   s.Whitespace0(),
		"Bal":   s.Balanced('(', ')'),
		"LitSt": s.LitString(""),
	}
	for name, got := range checks {
		if got {
			t.Errorf("%s on unbound subject = true", name)
		}
	}
}

// The anchored sequence below mirrors probing "(xy)" from the start while
// progress elsewhere is kept.
func TestAnchoredMode(t *testing.T) {
	var s Subject
	s.BindString("(xy)")

	if !(s.Lit('(') && s.Lit('x')) {
		t.Fatal("unanchored ( x failed")
	}
	if got := s.Text(s.View()); got != "x" {
		t.Errorf("view = %q, want %q", got, "x")
	}

	s.Anchor()
	if s.Mode() != Anchored {
		t.Fatalf("Mode() = %v", s.Mode())
	}
	if s.Lit('x') {
		t.Error("anchored Lit('x') matched at offset 0")
	}
	if !s.Lit('(') {
		t.Fatal("anchored Lit('(') failed")
	}
	// The second attempt starts from offset 0 again, not from 1.
	if s.Lit('(') && s.Lit('x') {
		t.Error("anchored ( x matched; each anchored attempt must start at 0")
	}
	if !s.Lit('(') || s.View() != (View{0, 1}) {
		t.Errorf("anchored view = %+v, want [0,1)", s.View())
	}
	if !s.Len(2) || s.Cursor() != 2 || !s.At(2) {
		t.Errorf("cursor after anchored Len(2) = %d, want 2", s.Cursor())
	}
	if !s.Len(1) || s.Cursor() != 1 {
		t.Errorf("cursor after anchored Len(1) = %d, want 1", s.Cursor())
	}

	s.Unanchor()
	if !s.Len(3) || s.Text(s.View()) != "xy)" {
		t.Errorf("unanchored Len(3) = %q, want %q", s.Text(s.View()), "xy)")
	}
}

func TestAnchoredFailureKeepsView(t *testing.T) {
	var s Subject
	s.BindString("abc")
	s.Anchor()
	s.Len(2)
	before := s.View()
	if s.Lit('z') {
		t.Fatal("Lit('z') matched")
	}
	if s.View() != before {
		t.Errorf("view moved on failure: %+v -> %+v", before, s.View())
	}
}

func TestPositionPredicates(t *testing.T) {
	var s Subject
	s.BindString("0123456789")
	if !s.Len(4) {
		t.Fatal("Len(4) failed")
	}
	if !s.At(4) || s.At(5) {
		t.Error("At(4) must hold and At(5) must not")
	}
	if !s.AtR(6) || s.AtR(5) {
		t.Error("AtR(6) must hold and AtR(5) must not")
	}

	s.BindString("host=alpha")
	if !(s.Len(4) && s.At(4)) {
		t.Error("host lands at 4")
	}
	if !(s.Lit('=') && s.At(5)) {
		t.Error("= lands at 5")
	}

	s.BindString("text")
	if !(s.Rem() && s.AtR(0)) || !s.At(4) {
		t.Error("Rem lands at the end")
	}

	var nilSubject *Subject
	if nilSubject.At(0) || nilSubject.AtR(0) {
		t.Error("predicates on nil subject must be false")
	}
}

func TestModeString(t *testing.T) {
	if Anchored.String() != "anchored" || Unanchored.String() != "unanchored" {
		t.Errorf("Mode.String() = %q, %q", Anchored, Unanchored)
	}
}
