package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
)

type commandItem struct {
	core.CommandResult
}

func (i commandItem) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i commandItem) Description() string { return i.Desc }
func (i commandItem) FilterValue() string { return i.Name + " " + i.Desc + " " + i.CommandID }

// CommandScreen is the palette over the commands available in one scope.
type CommandScreen struct {
	scope  string
	search func(query string) []core.CommandResult
	input  textinput.Model
	list   list.Model
}

// NewCommandScreen lists commands for scope. search is usually bound to
// CommandRegistry.Search for the running model.
func NewCommandScreen(scope string, search func(query string) []core.CommandResult) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 48, 12)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.KeyMap.Quit.SetEnabled(false)
	s := &CommandScreen{scope: scope, search: search, input: inp, list: lst}
	s.refresh()
	return s
}

// OpenCommandPalette fits core.Model's OpenCommandModal hook.
func OpenCommandPalette(m *core.Model, scope string) core.Screen {
	reg := m.CommandRegistry()
	return NewCommandScreen(scope, func(query string) []core.CommandResult {
		return reg.Search(query, scope, m)
	})
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(commandItem)
			if !ok {
				return s, nil, true
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			id := it.CommandID
			return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
		case "up", "down", "ctrl+n", "ctrl+p":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			return s, cmd, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refresh()
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	results := s.search(strings.TrimSpace(s.input.Value()))
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, commandItem{r})
	}
	_ = s.list.SetItems(items)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-2))
	return s.input.View() + "\n\n" + s.list.View()
}
