// Package output prints search reports.
package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zephyrtronium/digitsplit"
	"github.com/zephyrtronium/digitsplit/internal/term"
)

// Printer writes reports one per line as "expr = value". It remembers the
// first write error and drops everything after it.
type Printer struct {
	w     io.Writer
	color bool
	exact lipgloss.Style
	err   error
}

// New creates a printer. If color is set, exact matches are highlighted with
// ANSI escapes even when w is not a terminal.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	}
	return &Printer{
		w:     w,
		color: color,
		exact: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// ColorEnabled resolves a color mode of "auto", "always" or "never" for
// output to w.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(w)
	}
}

// Report prints r. Its signature matches the callback of digitsplit.Search.Run.
func (p *Printer) Report(r digitsplit.Report) {
	if p.err != nil {
		return
	}
	line := r.String()
	if p.color && r.Error == 0 {
		line = p.exact.Render(line)
	}
	_, p.err = io.WriteString(p.w, line+"\n")
}

// Err returns the first error encountered while writing.
func (p *Printer) Err() error {
	return p.err
}
