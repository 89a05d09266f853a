package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type TabBar struct {
	Labels []string
	Active int
}

var (
	tabActiveStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	tabSep           = lipgloss.NewStyle().Foreground(ColorBorder).Render("│")
)

func (t TabBar) Render() string {
	parts := make([]string, 0, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts = append(parts, tabActiveStyle.Render(l))
		} else {
			parts = append(parts, tabInactiveStyle.Render(l))
		}
	}
	return strings.Join(parts, tabSep)
}

// HitTest returns the tab index under col, or -1.
func (t TabBar) HitTest(col int) int {
	x := 0
	for i, l := range t.Labels {
		w := ansi.StringWidth(l) + 2
		if col >= x && col < x+w {
			return i
		}
		x += w + 1
	}
	return -1
}
