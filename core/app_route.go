package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		if msg.IsErr {
			m.log.Warn("status error", "text", msg.Text)
		}
		return m, nil
	case PushScreenMsg:
		cmd := m.push(msg.Screen)
		return m, cmd
	case PopScreenMsg:
		if m.screens.Len() > 1 {
			m.screens.Pop()
		}
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case ConfirmedMsg:
		m.result, m.hasResult = msg, true
		m.SetStatus("Selected " + msg.Value)
		m.log.Info("value confirmed", "kind", msg.Kind, "value", msg.Value)
		var cmd tea.Cmd
		if m.OnConfirm != nil {
			cmd = m.OnConfirm(msg)
		}
		if m.ExitOnConfirm {
			m.quitting = true
			return m, tea.Sequence(cmd, tea.Quit)
		}
		return m, cmd
	case tea.MouseMsg:
		if m.screens.Len() != 1 {
			return m, nil
		}
		target, ok := m.screens.Top().(MouseTarget)
		if !ok {
			return m, nil
		}
		msg.Y -= m.bodyTop()
		return m, target.HandleMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			cmd := m.push(m.OpenCommandModal(&m, scope))
			return m, cmd
		}
		if m.keys.IsAction(msg, "open-history", scope) && m.OpenHistory != nil {
			cmd := m.push(m.OpenHistory(&m))
			return m, cmd
		}
		if m.keys.IsAction(msg, "open-presets", scope) && m.OpenPresets != nil {
			cmd := m.push(m.OpenPresets(&m))
			return m, cmd
		}
	}
	return m.dispatch(msg)
}

// push stacks s and runs its Init, if it has one.
func (m *Model) push(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	m.screens.Push(s)
	if in, ok := s.(interface{ Init() tea.Cmd }); ok {
		return in.Init()
	}
	return nil
}

// dispatch hands msg to the top screen. Popping the root screen quits
// without a result.
func (m Model) dispatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	if top == nil {
		return m, nil
	}
	next, cmd, pop := top.Update(msg)
	if !pop {
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	m.screens.Pop()
	if m.screens.Len() == 0 {
		m.quitting = true
		return m, tea.Sequence(cmd, tea.Quit)
	}
	return m, cmd
}
