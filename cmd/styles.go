package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all CLI output.
const (
	ColorSuccess = lipgloss.Color("#10B981")
	ColorError   = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")
)

// styles renders for one output stream. Colors are dropped when the stream
// is not a terminal, so piped output stays plain text.
type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		success: r.NewStyle().Foreground(ColorSuccess),
		failure: r.NewStyle().Bold(true).Foreground(ColorError),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// renderLines styles each line of s on its own. Rendering a multi-line
// string in one call pads every line to the width of the widest.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
