package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode says whether prompts and pickers may be shown.
type Mode int

const (
	// ModeNonInteractive never prompts; missing choices fall back to flags.
	ModeNonInteractive Mode = iota
	// ModeInteractive may prompt for a load order or a confirmation.
	ModeInteractive
)

func nonEmpty(v string) bool { return v != "" }

// automationEnv lists variables that force non-interactive mode.
var automationEnv = []struct {
	name  string
	match func(string) bool
}{
	{"SQLSTAGE_NON_INTERACTIVE", func(v string) bool { return v == "1" }},
	{"CI", nonEmpty},
	{"NO_COLOR", nonEmpty},
}

// DetectMode reports ModeInteractive only when no automation variable is set
// and both stdin and stdout are terminals.
func DetectMode() Mode {
	for _, env := range automationEnv {
		if env.match(os.Getenv(env.name)) {
			return ModeNonInteractive
		}
	}

	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !term.IsTerminal(int(f.Fd())) {
			return ModeNonInteractive
		}
	}
	return ModeInteractive
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
