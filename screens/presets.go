package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/presets"
	"github.com/jask/clockface/widgets"
)

var cursorStyle = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)

// PresetScreen offers named allowed-time rules for the root picker.
type PresetScreen struct {
	chooser *core.Chooser
	byName  map[string]presets.Preset
}

func NewPresetScreen(list []presets.Preset) *PresetScreen {
	items := make([]core.ChoiceItem, 0, len(list))
	byName := make(map[string]presets.Preset, len(list))
	for _, p := range list {
		byName[p.Name] = p
		items = append(items, core.ChoiceItem{
			ID:     p.Name,
			Label:  p.Name,
			Meta:   p.Description,
			Search: p.Name + " " + p.Description,
		})
	}
	return &PresetScreen{chooser: core.NewChooser("Presets", items), byName: byName}
}

func (s *PresetScreen) Title() string { return "Presets" }
func (s *PresetScreen) Scope() string { return core.ScopePresets }

func (s *PresetScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.chooser.HandleKey(key.String())
	switch result.Action {
	case core.ChooserCancelled:
		return s, nil, true
	case core.ChooserSelected:
		p, exists := s.byName[result.Item.ID]
		if !exists {
			return s, nil, true
		}
		return s, func() tea.Msg { return core.ApplyRulesMsg{Name: p.Name, Rules: p.Rules()} }, true
	}
	return s, nil, false
}

func (s *PresetScreen) View(width, height int) string {
	lines := []string{s.chooser.Title()}
	filter := s.chooser.Query()
	if filter == "" {
		filter = hintStyle.Render("(type to filter)")
	}
	lines = append(lines, "Filter: "+filter, "")
	items := s.chooser.Items()
	if len(items) == 0 {
		lines = append(lines, "  No presets")
	}
	for idx, item := range items {
		label := item.Label
		if item.Meta != "" {
			label += hintStyle.Render(" - " + item.Meta)
		}
		if idx == s.chooser.Cursor() {
			lines = append(lines, cursorStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+label)
		}
	}
	lines = append(lines, "", hintStyle.Render("enter apply · esc cancel"))
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}
