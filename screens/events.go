package screens

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
)

// Result kinds carried by core.ConfirmedMsg.
const (
	KindTime     = "time"
	KindDateTime = "datetime"
	KindColor    = "color"
)

// observe logs picker events and turns a confirmation into a command.
// confirm builds the confirmed value from the event; a nil confirm
// ignores confirmations.
func observe(log *slog.Logger, events []core.Event, confirm func(core.Event) tea.Cmd) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range events {
		log.Debug("picker event", "kind", e.Kind.String(), "mode", e.Mode.String(), "value", e.Value, "text", e.Text)
		if e.Kind == core.EventConfirmed && confirm != nil {
			cmds = append(cmds, confirm(e))
		}
	}
	return tea.Batch(cmds...)
}

func push(s core.Screen) tea.Cmd {
	return func() tea.Msg { return core.PushScreenMsg{Screen: s} }
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
