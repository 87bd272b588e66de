package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Verbose enables debug output when true
var Verbose bool

var (
	debugOutput io.Writer = os.Stderr
	debugPrefix           = renderPrefix(os.Stderr)
)

// SetDebugOutput redirects debug messages to w. It is never stdout, which
// carries the dump. The prefix style is resolved for w once, here.
func SetDebugOutput(w io.Writer) {
	debugOutput = w
	debugPrefix = renderPrefix(w)
}

// DebugOutput returns the writer debug messages go to.
func DebugOutput() io.Writer {
	return debugOutput
}

func renderPrefix(w io.Writer) string {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}).
		Render("[DEBUG]")
}

// Debugf prints debug messages when Verbose is true
func Debugf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(debugOutput, "%s %s\n", debugPrefix, fmt.Sprintf(format, args...))
}
