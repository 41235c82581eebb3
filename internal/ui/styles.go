package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles holds every style used by dh-ping output.
type Styles struct {
	renderer *lipgloss.Renderer

	Success lipgloss.Style
	NoData  lipgloss.Style
	Error   lipgloss.Style
	Input   lipgloss.Style
	Prompt  lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles for output written to w. mode is one of the Color*
// constants; unknown values behave like ColorAuto.
func NewStyles(w io.Writer, mode string) *Styles {
	r := lipgloss.NewRenderer(w)
	switch strings.ToLower(mode) {
	case ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		renderer: r,
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		NoData:   r.NewStyle().Foreground(lipgloss.Color("5")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")),
		Input:    r.NewStyle().Foreground(lipgloss.Color("3")),
		Prompt:   r.NewStyle(),
		Title:    r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Colored reports whether the styles emit escape sequences.
func (s *Styles) Colored() bool {
	return s.renderer.ColorProfile() != termenv.Ascii
}

// Paint renders s with style line by line, so multi-line text is not padded
// to a common width.
func Paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
