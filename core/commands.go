package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// setPrefix marks the value entry Search offers when the query itself reads
// as a value for the scope.
const setPrefix = "set:"

// Search lists commands available in scope, best match first. Name matches
// rank above description matches, and a one-letter typo in a longer name
// word still matches. Disabled commands sort after enabled ones.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	type ranked struct {
		CommandResult
		rank int
	}
	found := make([]ranked, 0, len(r.commands)+1)
	if res, ok := valueResult(query, scope); ok {
		found = append(found, ranked{CommandResult: res, rank: -1})
	}
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		rank, ok := matchRank(q, c)
		if !ok {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		found = append(found, ranked{CommandResult: CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		}, rank: rank})
	}
	slices.SortFunc(found, func(a, b ranked) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.rank != b.rank {
			return cmp.Compare(a.rank, b.rank)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	results := make([]CommandResult, len(found))
	for i, f := range found {
		results[i] = f.CommandResult
	}
	return results
}

// matchRank scores q against c: 0 exact name, 1 name prefix, 2 name word,
// 3 description or id, 4 typo in a name word.
func matchRank(q string, c Command) (int, bool) {
	if q == "" {
		return 0, true
	}
	name := strings.ToLower(c.Name)
	switch {
	case name == q:
		return 0, true
	case strings.HasPrefix(name, q):
		return 1, true
	case strings.Contains(name, q):
		return 2, true
	case strings.Contains(strings.ToLower(c.Description+" "+c.ID), q):
		return 3, true
	}
	for _, w := range strings.Fields(name) {
		if len(w) > 3 && levenshtein.ComputeDistance(q, w) <= 1 {
			return 4, true
		}
	}
	return 0, false
}

// valueResult offers to set the picker straight to a typed value.
func valueResult(query, scope string) (CommandResult, bool) {
	text := strings.TrimSpace(query)
	if text == "" {
		return CommandResult{}, false
	}
	var shown string
	switch scope {
	case ScopeTime:
		t := ParseTime(text)
		if t.IsZero() {
			return CommandResult{}, false
		}
		shown, _ = FormatTime(t, t.Second.Or(0) != 0)
	case ScopeDateTime:
		if ParseTime(text).IsZero() {
			return CommandResult{}, false
		}
		shown = text
	case ScopeColor:
		c, err := ParseRGBA(text)
		if err != nil {
			return CommandResult{}, false
		}
		shown = c.String()
	default:
		return CommandResult{}, false
	}
	return CommandResult{CommandID: setPrefix + text, Name: "Set " + shown, Desc: "use the typed value"}, true
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	if text, ok := strings.CutPrefix(id, setPrefix); ok {
		return SetValueCmd(text)
	}
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// DefaultCommands are the palette entries shared by every picker.
func DefaultCommands() []Command {
	setTo := func(text string) func(*Model) tea.Cmd {
		return func(*Model) tea.Cmd { return SetValueCmd(text) }
	}
	unavailable := func(open func(*Model) func(*Model) Screen, reason string) func(*Model) (bool, string) {
		return func(m *Model) (bool, string) {
			if open(m) == nil {
				return true, reason
			}
			return false, ""
		}
	}
	return []Command{
		{ID: "set-now", Name: "Now", Description: "set the current time", Scopes: pickerScopes, Execute: setTo("now")},
		{ID: "set-noon", Name: "Noon", Description: "set 12:00", Scopes: pickerScopes, Execute: setTo("noon")},
		{ID: "set-midnight", Name: "Midnight", Description: "set 00:00", Scopes: pickerScopes, Execute: setTo("midnight")},
		{
			ID: "clear", Name: "Clear", Description: "unset the value", Scopes: rootScopes,
			Execute: func(*Model) tea.Cmd {
				return func() tea.Msg { return ClearValueMsg{} }
			},
		},
		{
			ID: "history", Name: "History", Description: "recently confirmed values", Scopes: rootScopes,
			Execute: func(m *Model) tea.Cmd {
				screen := m.OpenHistory(m)
				return func() tea.Msg { return PushScreenMsg{Screen: screen} }
			},
			Disabled: unavailable(func(m *Model) func(*Model) Screen { return m.OpenHistory }, "history is not configured"),
		},
		{
			ID: "presets", Name: "Presets", Description: "apply allowed-time rules", Scopes: pickerScopes,
			Execute: func(m *Model) tea.Cmd {
				screen := m.OpenPresets(m)
				return func() tea.Msg { return PushScreenMsg{Screen: screen} }
			},
			Disabled: unavailable(func(m *Model) func(*Model) Screen { return m.OpenPresets }, "no presets loaded"),
		},
	}
}
