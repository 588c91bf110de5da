package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorWarn    lipgloss.Color = "#f9e2af"
)

type theme struct {
	title   lipgloss.Style
	item    lipgloss.Style
	index   lipgloss.Style
	menuKey lipgloss.Style
	prompt  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

// newTheme binds the palette to w. With color disabled every style renders
// plain text.
func newTheme(w io.Writer, color bool) theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return theme{
		title:   r.NewStyle().Foreground(colorAccent).Bold(true),
		item:    r.NewStyle().Foreground(colorText),
		index:   r.NewStyle().Foreground(colorMuted),
		menuKey: r.NewStyle().Foreground(colorAccent).Bold(true),
		prompt:  r.NewStyle().Foreground(colorAccent),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess),
		warn:    r.NewStyle().Foreground(colorWarn),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
	}
}
