package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
)

// EntryScreen reads a value typed as text and hands it to the root picker.
type EntryScreen struct {
	title string
	input textinput.Model
}

func NewEntryScreen(title, placeholder string) *EntryScreen {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "> "
	inp.CharLimit = 64
	inp.Focus()
	return &EntryScreen{title: title, input: inp}
}

func (s *EntryScreen) Title() string { return s.title }
func (s *EntryScreen) Scope() string { return core.ScopeEntry }

func (s *EntryScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, nil, true
		case "enter":
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s, nil, true
			}
			return s, func() tea.Msg { return core.SetValueMsg{Text: text, Confirm: true} }, true
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *EntryScreen) View(width, height int) string {
	s.input.Width = max(10, width-4)
	return s.title + "\n\n" + s.input.View() + "\n\n" + hintStyle.Render("enter to set · esc to cancel")
}
