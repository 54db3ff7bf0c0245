// Package pretty provides Lipgloss-based styled output utilities for the
// textreport CLI. Report text itself is never styled.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI chrome (help and summaries).
type Styles struct {
	// Help components
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Example    lipgloss.Style

	// Summary components
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return &Styles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Example:    dim,

		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Value:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		Dim:  dim,
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Command:    plain,
		Heading:    plain,
		Subcommand: plain,
		Flag:       plain,
		Example:    plain,
		Label:      plain,
		Value:      plain,
		Success:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return IsTerminal(writer)
	}
}

// IsTerminal reports whether writer is a terminal file.
func IsTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
