package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames content with a rounded border. Width and height include the
// border.
type Box struct {
	Title   string
	Content string
	Focused bool
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	border := ColorBorder
	if b.Focused {
		border = ColorAccent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height)
	content := b.Content
	if b.Title != "" {
		content = lipgloss.NewStyle().Foreground(ColorMuted).Render(b.Title) + "\n" + content
	}
	return style.Render(content)
}
