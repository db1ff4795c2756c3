package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles render for one writer; a writer that is not a terminal gets
// plain text
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		label: r.NewStyle().Foreground(colorMuted).Width(10),
		ok:    r.NewStyle().Foreground(colorSecondary),
		fail:  r.NewStyle().Foreground(colorError),
		muted: r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// bool renders v green when true and red when false
func (s styles) bool(v bool) string {
	if v {
		return s.ok.Render("true")
	}
	return s.fail.Render("false")
}
