// Package style holds the colours and icons shared by terminal output.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/lintcfg/internal/ui/output"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Heading returns the style for section titles written to w.
func Heading(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile(w)))
	return r.NewStyle().Bold(true).Foreground(Iris)
}
