package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by command renderers.
type Styles struct {
	Header   lipgloss.Style
	Bold     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	FilePath lipgloss.Style
}

// newStyles builds the colored style set for terminal output.
func newStyles() *Styles {
	if termenv.EnvColorProfile() == termenv.Ascii {
		return newPlainStyles()
	}
	return &Styles{
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:     lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FilePath: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

// newPlainStyles builds a style set that renders text unchanged, for
// markdown, JSON, and non-TTY output.
func newPlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:   plain,
		Bold:     plain,
		Success:  plain,
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Muted:    plain,
		FilePath: plain,
	}
}
