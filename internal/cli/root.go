// Package cli implements the sno command: small line-oriented tools built on
// the matching engine.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the state derived from them.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	Config Config
	Log    zerolog.Logger
}

// NewRootCommand creates the root command for the sno CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: DefaultConfig(), Log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "sno",
		Short:         "SNOBOL-style pattern matching over lines of text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ./sno.yaml)")

	cmd.AddCommand(NewKVCommand(opts))
	cmd.AddCommand(NewBalCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.Log = newLogger(cmd.ErrOrStderr(), o.Verbose)

	config, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "config", err)
	}
	if o.Format != "" {
		config.Format = o.Format
	}
	if !isValidFormat(config.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", config.Format, ValidFormats))
	}
	o.Config = config
	o.Log.Debug().Str("format", config.Format).Str("comment", config.Comment).Bool("strict", config.Strict).Msg("config loaded")
	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level).
		With().Timestamp().Logger()
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	format := o.Config.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{Format: format, Writer: cmd.OutOrStdout()}
}

// openInput returns the named file, or stdin when args is empty.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], WrapExitError(ExitCommandError, "cannot open input", err)
	}
	return f, args[0], nil
}
