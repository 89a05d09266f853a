package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockface/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	var body string
	if root := m.screens.Root(); root != nil && bodyHeight > 0 {
		body = root.View(max(1, m.width), bodyHeight)
	}
	if m.screens.Len() > 1 && bodyHeight > 0 {
		top := m.screens.Top()
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(6, bodyHeight-4)), m.width, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// bodyTop is the row where the root screen starts.
func (m Model) bodyTop() int {
	return lipgloss.Height(renderHeader(m)) + lipgloss.Height(RenderStatusBar(m))
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.appName)
	title := ""
	if top := m.screens.Top(); top != nil {
		title = top.Title()
	}
	right := headerTitleStyle.Render(title)
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
