package sqlstage

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := loader.Load(ctx, config)
//	if errors.Is(err, sqlstage.ErrExecutionFailed) {
//	    // The client rejected one of the files
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidFormat indicates a dump file matched neither the pure nor the quoted format.
	ErrInvalidFormat = errors.New("invalid SQL format")

	// ErrInvalidOrder indicates the operator-supplied execution order cannot be used.
	ErrInvalidOrder = errors.New("invalid execution order")

	// ErrExecutionFailed indicates the external client exited with a non-zero status.
	ErrExecutionFailed = errors.New("execution failed")
)

// FormatError reports a dump file whose first two lines are both unrecognized.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("preliminary check: %s", ErrInvalidFormat)
	}
	return fmt.Sprintf("preliminary check: %s in %s", ErrInvalidFormat, e.Path)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// ExecutionError reports a file the client failed to apply.
// Files loaded before it are not rolled back.
type ExecutionError struct {
	File     string
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("failed to load %s (exit status %d)", e.File, e.ExitCode)
	if e.Stderr == "" {
		return msg
	}
	return msg + ": " + previewStderr(e.Stderr)
}

// previewStderr shortens s to at most MaxErrorPreviewLength bytes without
// splitting a multi-byte character.
func previewStderr(s string) string {
	if len(s) <= MaxErrorPreviewLength {
		return s
	}
	cut := MaxErrorPreviewLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func (e *ExecutionError) Unwrap() error { return ErrExecutionFailed }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidFormat):
		return ExitFormatError
	case errors.Is(err, ErrInvalidOrder):
		return ExitOrderError
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorMarkers = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"flag needs an argument",
	"invalid argument",
	"accepts ",
}
