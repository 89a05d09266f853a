package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// ConfirmedMsg is sent by a picker screen when the user confirms a value.
type ConfirmedMsg struct {
	Kind  string
	Value string
}

// SetValueMsg asks the root picker to adopt a value typed or chosen
// elsewhere. Text goes through ResolveInput.
type SetValueMsg struct {
	Text string
	// Confirm reports the value as chosen instead of only showing it.
	Confirm bool
}

type ClearValueMsg struct{}

// ApplyRulesMsg swaps the allowed-value rules of the root picker.
type ApplyRulesMsg struct {
	Name  string
	Rules Rules
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func ConfirmCmd(kind, value string) tea.Cmd {
	return func() tea.Msg { return ConfirmedMsg{Kind: kind, Value: value} }
}

func SetValueCmd(text string) tea.Cmd {
	return func() tea.Msg { return SetValueMsg{Text: text} }
}
