package sno

import (
	"strings"
	"testing"
)

func TestBalanced(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		open    byte
		close   byte
		want    string
		ok      bool
	}{
		{"nested", "(a(b)c)", '(', ')', "(a(b)c)", true},
		{"trailing text", "(a(b)c)d", '(', ')', "(a(b)c)", true},
		{"empty pair", "()", '(', ')', "()", true},
		{"adjacent groups", "(a)(b)", '(', ')', "(a)", true},
		{"deep", "((((x))))", '(', ')', "((((x))))", true},
		{"brackets", "[a[b]]", '[', ']', "[a[b]]", true},
		{"missing final close", "(a(b)c", '(', ')', "", false},
		{"no leading open", "abc", '(', ')', "", false},
		{"close first", ")(", '(', ')', "", false},
		{"unmatched inner open", "(a(b", '(', ')', "", false},
		{"lone open", "(", '(', ')', "", false},
		{"empty buffer", "", '(', ')', "", false},
		{"quotes", `"abc"def`, '"', '"', `"abc"`, true},
		{"long run", "(" + strings.Repeat("x", 100) + ")", '(', ')', "(" + strings.Repeat("x", 100) + ")", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Subject
			s.BindString(tt.subject)
			before := snapshot(&s)
			if got := s.Balanced(tt.open, tt.close); got != tt.ok {
				t.Fatalf("Balanced(%q) = %v, want %v", tt.subject, got, tt.ok)
			}
			if !tt.ok {
				assertUnchanged(t, &s, before, "Balanced")
				if s.Cursor() != 0 {
					t.Errorf("cursor = %d, want 0", s.Cursor())
				}
				return
			}
			if got := s.Text(s.View()); got != tt.want {
				t.Errorf("view = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBalancedMidBuffer(t *testing.T) {
	var s Subject
	s.BindString("f(x, g(y)) + 1")
	if !s.Lit('f') {
		t.Fatal("f")
	}
	if !s.Balanced('(', ')') {
		t.Fatal("Balanced failed")
	}
	if s.View() != (View{1, 10}) {
		t.Errorf("view = %+v, want [1,10)", s.View())
	}
	before := snapshot(&s)
	if s.Balanced('(', ')') {
		t.Error("Balanced matched at ' '")
	}
	assertUnchanged(t, &s, before, "Balanced")
}

func TestBalancedDeepNesting(t *testing.T) {
	const depth = 10000
	subject := strings.Repeat("(", depth) + strings.Repeat(")", depth)

	var s Subject
	s.BindString(subject)
	if !s.Balanced('(', ')') || !s.AtR(0) {
		t.Fatal("deeply nested match failed")
	}

	s.BindString(subject[:len(subject)-1])
	if s.Balanced('(', ')') {
		t.Error("unbalanced deep input matched")
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
}

func TestBalancedHugeInput(t *testing.T) {
	const n = 8 << 20

	var s Subject
	s.BindString(strings.Repeat("(", n))
	before := snapshot(&s)
	if s.Balanced('(', ')') {
		t.Fatal("run of opens matched")
	}
	assertUnchanged(t, &s, before, "Balanced")

	s.BindString(strings.Repeat("(", n/2) + strings.Repeat(")", n/2) + "tail")
	if !s.Balanced('(', ')') {
		t.Fatal("deep balanced input failed")
	}
	if s.View() != (View{0, n}) {
		t.Errorf("view = %+v, want [0,%d)", s.View(), n)
	}
}

func TestBalancedStopsAtOutermostClose(t *testing.T) {
	var s Subject
	s.BindString("(a)b)")
	if !s.Balanced('(', ')') || s.Text(s.View()) != "(a)" {
		t.Errorf("view = %q, want %q", s.Text(s.View()), "(a)")
	}

	s.BindString("((a)b")
	if s.Balanced('(', ')') {
		t.Error("outer open left unclosed but matched")
	}
}
