package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cspjst/sno"
	"github.com/cspjst/sno/charset"
	"github.com/cspjst/sno/internal/swar"
)

// Group is one top-level balanced group found on a line.
type Group struct {
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Text   string `json:"text" yaml:"text"`
}

// BalResult is the output of the bal command.
type BalResult struct {
	Groups     []Group `json:"groups" yaml:"groups"`
	Unbalanced int     `json:"unbalanced" yaml:"unbalanced"`
}

// RenderText writes line:column and the group, one per line.
func (r *BalResult) RenderText(w io.Writer) error {
	for _, g := range r.Groups {
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\n", g.Line, g.Column, g.Text); err != nil {
			return err
		}
	}
	return nil
}

// NewBalCommand creates the bal command.
func NewBalCommand(rootOpts *RootOptions) *cobra.Command {
	var open, close string

	cmd := &cobra.Command{
		Use:   "bal [file]",
		Short: "Extract balanced delimiter groups",
		Long: `Print every top-level balanced group on each line of a file or stdin.

An open delimiter without a matching close on the same line is skipped and
counted as unbalanced.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(open) != 1 || len(close) != 1 {
				return NewExitError(ExitCommandError, "--open and --close must be single bytes")
			}
			return runBal(rootOpts, cmd, args, open[0], close[0])
		},
	}

	cmd.Flags().StringVar(&open, "open", "(", "open delimiter")
	cmd.Flags().StringVar(&close, "close", ")", "close delimiter")

	return cmd
}

func runBal(opts *RootOptions, cmd *cobra.Command, args []string, open, close byte) error {
	in, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := FindBalanced(in, open, close)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read "+name, err)
	}
	if result.Unbalanced > 0 {
		opts.Log.Warn().Str("input", name).Int("count", result.Unbalanced).Msg("unbalanced open delimiters")
	}

	if err := opts.formatter(cmd).Write(result); err != nil {
		return WrapExitError(ExitCommandError, "cannot write output", err)
	}
	return nil
}

// FindBalanced collects the top-level open...close groups of every line of r.
// Opens that never close are located in one pass per line before matching,
// so they are counted without rescanning the rest of the line.
func FindBalanced(r io.Reader, open, close byte) (*BalResult, error) {
	result := &BalResult{Groups: []Group{}}
	opener := charset.Of(open)
	scanner := newLineScanner(r)

	var (
		s     sno.Subject
		stack []int
	)
	for line := 1; scanner.Scan(); line++ {
		if !s.Bind(scanner.Bytes()) {
			continue
		}
		stack = unmatchedOpens(s.Bytes(s.Str()), open, close, stack[:0])
		next := 0
		for s.Break(opener) && !s.AtR(0) {
			if next < len(stack) && stack[next] == s.Cursor() {
				next++
				result.Unbalanced++
				s.Len(1)
				continue
			}
			if s.Balanced(open, close) {
				result.Groups = append(result.Groups, Group{
					Line:   line,
					Column: s.View().Begin + 1,
					Text:   s.Text(s.View()),
				})
				continue
			}
			result.Unbalanced++
			s.Len(1)
		}
	}
	return result, scanner.Err()
}

// unmatchedOpens appends to stack the offsets, in ascending order, of the
// open delimiters in line that no later close balances.
func unmatchedOpens(line []byte, open, close byte, stack []int) []int {
	for pos := 0; pos < len(line); {
		switch c := line[pos]; {
		case c == close && len(stack) > 0:
			stack = stack[:len(stack)-1]
		case c == open:
			stack = append(stack, pos)
		case c != close:
			i := swar.Memchr2(line[pos:], open, close)
			if i < 0 {
				return stack
			}
			pos += i
			continue
		}
		pos++
	}
	return stack
}
