package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#5FAFFF")
	muted  = lipgloss.Color("#808080")
)

type styles struct {
	id      lipgloss.Style
	name    lipgloss.Style
	comment lipgloss.Style
	marker  lipgloss.Style
}

// newStyles renders for w, so colours are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	re := lipgloss.NewRenderer(w)
	return styles{
		id:      re.NewStyle().Bold(true).Foreground(accent),
		name:    re.NewStyle(),
		comment: re.NewStyle().Foreground(muted),
		marker:  re.NewStyle().Bold(true),
	}
}
