// Package console centralizes terminal interaction: styled status messages and
// interactive prompts. All human-facing output goes to stderr so stdout stays
// clean for machine consumption. Prompts are built on charmbracelet/huh and
// refuse to run without a TTY, which keeps CI and piped invocations honest.
package console

import (
	"os"

	"golang.org/x/term"
)

// IsAccessibleMode reports whether prompts should run in accessible mode
// (plain sequential questions instead of a full-screen form). Controlled by
// the ACCESSIBLE environment variable, following huh's convention.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// isTTY reports whether both stdin and stderr are attached to a terminal.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
