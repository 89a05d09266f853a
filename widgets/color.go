package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChannelField is one labelled input of a colour row. View is the already
// rendered input.
type ChannelField struct {
	Label   string
	View    string
	Focused bool
}

type ColorRow struct {
	Fields   []ChannelField
	Hex      string
	Swatches []string
}

var (
	channelLabelStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	channelFocusedStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// Swatch renders a block filled with hex. Unreadable colours render blank.
func Swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", width))
}

func (r ColorRow) Render() string {
	cols := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		label := channelLabelStyle.Render(f.Label)
		if f.Focused {
			label = channelFocusedStyle.Render(f.Label)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, f.View, label))
	}
	row := joinWithGap(cols, 2)
	preview := lipgloss.JoinVertical(lipgloss.Left, Swatch(r.Hex, 8), Swatch(r.Hex, 8))
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, preview, "  ", row)}
	if len(r.Swatches) > 0 {
		chips := make([]string, 0, len(r.Swatches))
		for _, s := range r.Swatches {
			chips = append(chips, Swatch(s, 3))
		}
		lines = append(lines, "", channelLabelStyle.Render("saved ")+strings.Join(chips, " "))
	}
	return strings.Join(lines, "\n")
}

func joinWithGap(blocks []string, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	spaced := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, strings.Repeat(" ", gap))
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}
