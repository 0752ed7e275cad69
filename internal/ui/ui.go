package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled status lines. Colors are dropped when the
// destination is not a terminal.
type Printer struct {
	w io.Writer

	warning lipgloss.Style
	err     lipgloss.Style
	path    lipgloss.Style
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		warning: r.NewStyle().Foreground(lipgloss.Color("214")), // Yellow
		err:     r.NewStyle().Foreground(lipgloss.Color("197")), // Red
		path:    r.NewStyle().Faint(true),
	}
}

func (p *Printer) print(style lipgloss.Style, format string, a ...interface{}) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, a...)))
}

func (p *Printer) Warning(format string, a ...interface{}) { p.print(p.warning, format, a...) }
func (p *Printer) Error(format string, a ...interface{})   { p.print(p.err, format, a...) }

func (p *Printer) Path(format string, a ...interface{}) {
	p.print(p.path, "  - "+format, a...)
}

// PrintOverlap lists the result entries that were also reported unused.
func (p *Printer) PrintOverlap(overlap []string) {
	p.Error("trimming failed: %d unused file(s) found in the result:", len(overlap))
	for _, f := range overlap {
		p.Path("%s", f)
	}
}
