package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Malformed input in strict mode
	ExitCommandError = 2 // Command error (unreadable file, bad flag value, ...)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// maxLineSize bounds a single input line for the line-oriented commands.
const maxLineSize = 64 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// TextRenderer is implemented by results with a human-readable form.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Write outputs data in the configured format.
func (f *OutputFormatter) Write(data any) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	if r, ok := data.(TextRenderer); ok {
		return r.RenderText(f.Writer)
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}
