package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Segment is one clickable piece of a title line.
type Segment struct {
	Label  string
	Active bool
	Locked bool
	// Gap puts a space before the segment.
	Gap bool
}

type TitleBar struct {
	Segments []Segment
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(ColorMuted).Bold(true)
	titleActiveStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Underline(true)
	titleLockedStyle = lipgloss.NewStyle().Foreground(ColorDisabled)
)

func (t TitleBar) Render() string {
	var b strings.Builder
	for _, s := range t.Segments {
		if s.Gap {
			b.WriteString(" ")
		}
		style := titleStyle
		switch {
		case s.Active:
			style = titleActiveStyle
		case s.Locked && s.Label != ":":
			style = titleLockedStyle
		}
		b.WriteString(style.Render(s.Label))
	}
	return b.String()
}

func (t TitleBar) Width() int {
	w := 0
	for _, s := range t.Segments {
		if s.Gap {
			w++
		}
		w += ansi.StringWidth(s.Label)
	}
	return w
}

// HitTest returns the index of the segment under col, or -1.
func (t TitleBar) HitTest(col int) int {
	x := 0
	for i, s := range t.Segments {
		if s.Gap {
			x++
		}
		w := ansi.StringWidth(s.Label)
		if col >= x && col < x+w {
			return i
		}
		x += w
	}
	return -1
}
