package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cspjst/sno"
)

// DumpResult is the structured form of a subject dump.
type DumpResult struct {
	Buffer string `json:"buffer" yaml:"buffer"`
	View   [2]int `json:"view" yaml:"view,flow"`
	Text   string `json:"text" yaml:"text"`
	Mark   int    `json:"mark" yaml:"mark"`
	Cursor int    `json:"cursor" yaml:"cursor"`
	Length int    `json:"length" yaml:"length"`
	Mode   string `json:"mode" yaml:"mode"`

	subject *sno.Subject
}

// RenderText writes the engine's own diagnostic dump.
func (d *DumpResult) RenderText(w io.Writer) error {
	return d.subject.Dump(w)
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var tab, rtab, skip int

	cmd := &cobra.Command{
		Use:   "dump <text>",
		Short: "Bind text and print the subject state",
		Long: `Bind text to a subject, optionally advance the cursor, and print the
buffer, current view, mark, cursor, length and mode.

--len runs Len, --tab runs Tab and --rtab runs RTab, in that order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var s sno.Subject
			s.BindString(args[0])

			steps := []struct {
				name string
				set  bool
				run  func() bool
			}{
				{"len", cmd.Flags().Changed("len"), func() bool { return s.Len(skip) }},
				{"tab", cmd.Flags().Changed("tab"), func() bool { return s.Tab(tab) }},
				{"rtab", cmd.Flags().Changed("rtab"), func() bool { return s.RTab(rtab) }},
			}
			for _, step := range steps {
				if step.set && !step.run() {
					rootOpts.Log.Warn().Str("step", step.name).Int("cursor", s.Cursor()).Msg("no match")
				}
			}

			v := s.View()
			result := &DumpResult{
				Buffer:  s.Text(s.Str()),
				View:    [2]int{v.Begin, v.End},
				Text:    s.Text(v),
				Mark:    s.MarkPos(),
				Cursor:  s.Cursor(),
				Length:  s.Length(),
				Mode:    s.Mode().String(),
				subject: &s,
			}
			if err := rootOpts.formatter(cmd).Write(result); err != nil {
				return WrapExitError(ExitCommandError, "cannot write output", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "len", 0, "match this many bytes first")
	cmd.Flags().IntVar(&tab, "tab", 0, "then tab to this offset")
	cmd.Flags().IntVar(&rtab, "rtab", 0, "then tab to this many bytes before the end")

	return cmd
}
