package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used for game output. They are bound to
// the output writer, so colors are dropped when it is not a terminal.
type Styles struct {
	Heading     lipgloss.Style
	Notice      lipgloss.Style
	Hint        lipgloss.Style
	Success     lipgloss.Style
	Failure     lipgloss.Style
	Achievement lipgloss.Style
}

// NewStyles builds the styles for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Heading:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Notice:      r.NewStyle().Foreground(lipgloss.Color("11")),
		Hint:        r.NewStyle().Foreground(lipgloss.Color("14")),
		Success:     r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Achievement: r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}
