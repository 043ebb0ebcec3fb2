package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBalanced(t *testing.T) {
	result, err := FindBalanced(strings.NewReader("a[1][2[3]]\n[open\n"), '[', ']')
	require.NoError(t, err)

	assert.Equal(t, []Group{
		{Line: 1, Column: 2, Text: "[1]"},
		{Line: 1, Column: 5, Text: "[2[3]]"},
	}, result.Groups)
	assert.Equal(t, 1, result.Unbalanced)
}

func TestFindBalancedUnmatchedOpens(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		open       byte
		close      byte
		groups     []string
		unbalanced int
	}{
		{"inner pair after open", "(()", '(', ')', []string{"()"}, 1},
		{"pairs between opens", "(a(b)(c(d)", '(', ')', []string{"(b)", "(d)"}, 2},
		{"stray closes", ")(x))(", '(', ')', []string{"(x)"}, 1},
		{"quotes", `"a" "b`, '"', '"', []string{`"a"`}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FindBalanced(strings.NewReader(tt.line), tt.open, tt.close)
			require.NoError(t, err)

			texts := []string{}
			for _, g := range result.Groups {
				texts = append(texts, g.Text)
			}
			assert.Equal(t, tt.groups, texts)
			assert.Equal(t, tt.unbalanced, result.Unbalanced)
		})
	}
}

func TestFindBalancedLongUnmatchedLine(t *testing.T) {
	const n = 1 << 18
	line := strings.Repeat("(", n) + "(x)"

	start := time.Now()
	result, err := FindBalanced(strings.NewReader(line), '(', ')')
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)

	assert.Equal(t, n, result.Unbalanced)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, Group{Line: 1, Column: n + 1, Text: "(x)"}, result.Groups[0])
}

func TestBalTextGolden(t *testing.T) {
	out, stderr, err := runRoot(t, "", "bal", filepath.Join("testdata", "calls.txt"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "unbalanced open delimiters")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "bal_text", []byte(out))
}

func TestBalJSON(t *testing.T) {
	out, _, err := runRoot(t, "{a}{b{c}}", "bal", "--open", "{", "--close", "}", "--format", "json")
	require.NoError(t, err)

	var result BalResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Groups, 2)
	assert.Equal(t, "{b{c}}", result.Groups[1].Text)
	assert.Zero(t, result.Unbalanced)
}

func TestBalBadDelimiter(t *testing.T) {
	_, _, err := runRoot(t, "", "bal", "--open", "((")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
