// Package console styles the status lines printed by the CLI.
//
// Styling is applied only when the destination is a terminal and NO_COLOR
// is unset, so redirected output and test buffers stay plain text.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#E53935")
	colorMuted   = lipgloss.Color("#8A8F98")
)

// Styler renders status text for one writer.
type Styler struct {
	enabled bool
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
}

// New returns a Styler for w, enabled only when w is a terminal.
func New(w io.Writer) *Styler {
	return NewWithColor(w, IsTerminal(w) && os.Getenv("NO_COLOR") == "")
}

// NewWithColor returns a Styler with styling forced on or off.
func NewWithColor(w io.Writer, enabled bool) *Styler {
	r := lipgloss.NewRenderer(w)
	return &Styler{
		enabled: enabled,
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		bold:    r.NewStyle().Bold(true),
	}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}

// Enabled reports whether output is styled.
func (s *Styler) Enabled() bool { return s.enabled }

// Success styles text for completed steps such as a written listing.
func (s *Styler) Success(text string) string { return s.render(s.success, text) }

// Warning styles text for recoverable problems such as skipped rows.
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }

// Error styles text for failures. It is rendered bold.
func (s *Styler) Error(text string) string { return s.render(s.failure, text) }

// Muted styles secondary detail such as photo names in verbose output.
func (s *Styler) Muted(text string) string { return s.render(s.muted, text) }

// Bold renders text in bold with no colour.
func (s *Styler) Bold(text string) string { return s.render(s.bold, text) }

func (s *Styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
