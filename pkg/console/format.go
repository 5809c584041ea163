package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	verboseStyle = lipgloss.NewStyle().Faint(true)
)

// FormatSuccessMessage styles a message reporting a completed action.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render(msg)
}

// FormatInfoMessage styles a neutral informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render(msg)
}

// FormatWarningMessage styles a non-fatal warning.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render(msg)
}

// FormatErrorMessage styles a fatal error message.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render(msg)
}

// FormatCommandMessage styles a shell command or URL shown to the operator.
func FormatCommandMessage(msg string) string {
	return commandStyle.Render(msg)
}

// FormatVerboseMessage styles low-priority diagnostic output.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg)
}

// FormatErrorWithSuggestions styles an error followed by an indented list of
// suggested next steps.
func FormatErrorWithSuggestions(msg string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(FormatErrorMessage(msg))
	for _, s := range suggestions {
		b.WriteString("\n  ")
		b.WriteString(s)
	}
	return b.String()
}

// LogVerbose prints a verbose message to stderr when verbose output is on.
func LogVerbose(verbose bool, msg string) {
	if verbose {
		fmt.Fprintln(os.Stderr, FormatVerboseMessage(msg))
	}
}
