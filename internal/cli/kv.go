package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cspjst/sno"
	"github.com/cspjst/sno/charset"
)

// Pair is one parsed key=value line.
type Pair struct {
	Line  int    `json:"line" yaml:"line"`
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Malformed describes a line the grammar rejected.
type Malformed struct {
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Reason string `json:"reason" yaml:"reason"`
	Text   string `json:"text" yaml:"text"`
}

// KVResult is the output of the kv command.
type KVResult struct {
	Pairs     []Pair      `json:"pairs" yaml:"pairs"`
	Malformed []Malformed `json:"malformed,omitempty" yaml:"malformed,omitempty"`
}

// RenderText writes one key=value per line.
func (r *KVResult) RenderText(w io.Writer) error {
	for _, p := range r.Pairs {
		if _, err := fmt.Fprintf(w, "%s=%s\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// NewKVCommand creates the kv command.
func NewKVCommand(rootOpts *RootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "kv [file]",
		Short: "Parse key=value lines",
		Long: `Parse key=value lines from a file or stdin.

Keys are identifiers (letters, digits, underscore). Whitespace around the key
and the '=' is ignored, the value runs to the end of the line and is trimmed.
Blank lines and lines starting with a comment character are skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				rootOpts.Config.Strict = strict
			}
			return runKV(rootOpts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on malformed lines")

	return cmd
}

func runKV(opts *RootOptions, cmd *cobra.Command, args []string) error {
	in, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := ParseKV(in, charset.New(opts.Config.Comment))
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read "+name, err)
	}

	for _, m := range result.Malformed {
		opts.Log.Warn().Str("input", name).Int("line", m.Line).Int("column", m.Column).Str("reason", m.Reason).Msg("malformed line")
	}
	opts.Log.Debug().Str("input", name).Int("pairs", len(result.Pairs)).Msg("parsed")

	if err := opts.formatter(cmd).Write(result); err != nil {
		return WrapExitError(ExitCommandError, "cannot write output", err)
	}

	if opts.Config.Strict && len(result.Malformed) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d malformed line(s) in %s", len(result.Malformed), name))
	}
	return nil
}

// ParseKV parses key=value lines from r. Lines whose first non-blank byte is
// in comment are skipped.
func ParseKV(r io.Reader, comment *charset.Set) (*KVResult, error) {
	result := &KVResult{Pairs: []Pair{}}
	scanner := newLineScanner(r)

	var s sno.Subject
	for line := 1; scanner.Scan(); line++ {
		if !s.Bind(scanner.Bytes()) {
			continue
		}

		s.Whitespace0()
		if s.AtR(0) {
			continue
		}
		if s.Any(comment) {
			continue
		}

		pair, reason := parseKVLine(&s)
		if reason != "" {
			result.Malformed = append(result.Malformed, Malformed{
				Line:   line,
				Column: s.Cursor() + 1,
				Reason: reason,
				Text:   s.Text(s.Trim(s.Str(), charset.CRLF)),
			})
			continue
		}
		pair.Line = line
		result.Pairs = append(result.Pairs, pair)
	}
	return result, scanner.Err()
}

// parseKVLine matches ident ws '=' ws value from the cursor. On failure it
// returns the reason with the cursor left at the offending byte.
func parseKVLine(s *sno.Subject) (Pair, string) {
	if !s.Ident() {
		return Pair{}, "expected key"
	}
	key := s.Text(s.View())

	s.Whitespace0()
	if !s.Lit('=') {
		return Pair{}, "expected '='"
	}
	s.Whitespace0()
	s.Mark()
	s.Break(charset.CRLF)

	value := s.Trim(sno.View{Begin: s.MarkPos(), End: s.Cursor()}, charset.Whitespace)
	return Pair{Key: key, Value: s.Text(value)}, ""
}
