package core

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one layer of the screen stack. Update returns the replacement
// screen, an optional command and whether the screen should be popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// MouseTarget is implemented by screens that accept pointer input. Only the
// root screen receives mouse events, with coordinates relative to the body.
type MouseTarget interface {
	HandleMouse(msg tea.MouseMsg) tea.Cmd
}

type Model struct {
	width    int
	height   int
	appName  string
	screens  ScreenStack
	keys     *KeyRegistry
	commands *CommandRegistry
	log      *slog.Logger

	status    string
	statusErr bool
	quitting  bool

	result    ConfirmedMsg
	hasResult bool

	// ExitOnConfirm quits after the first confirmed value.
	ExitOnConfirm bool
	// OnConfirm runs for every confirmed value, typically to record it.
	OnConfirm func(ConfirmedMsg) tea.Cmd

	OpenCommandModal func(m *Model, scope string) Screen
	OpenHistory      func(m *Model) Screen
	OpenPresets      func(m *Model) Screen
}

func NewModel(appName string, root Screen, keys *KeyRegistry, commands *CommandRegistry, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := Model{
		appName:  appName,
		keys:     keys,
		commands: commands,
		log:      log,
		status:   "Ready",
		width:    80,
		height:   24,
	}
	m.screens.Push(root)
	return m
}

func (m Model) Init() tea.Cmd {
	if init, ok := m.screens.Root().(interface{ Init() tea.Cmd }); ok {
		return init.Init()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int { return m.screens.Len() }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Keys() *KeyRegistry { return m.keys }

// Result is the last confirmed value, if any.
func (m Model) Result() (ConfirmedMsg, bool) {
	return m.result, m.hasResult
}

func (m Model) Logger() *slog.Logger { return m.log }
