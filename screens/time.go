package screens

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

var hintStyle = lipgloss.NewStyle().Foreground(widgets.ColorMuted)

// TimeScreen is the root screen of the time picker.
type TimeScreen struct {
	picker *core.TimePicker
	keys   *core.KeyRegistry
	log    *slog.Logger
	now    func() time.Time

	width, height int
}

func NewTimeScreen(picker *core.TimePicker, keys *core.KeyRegistry, log *slog.Logger) *TimeScreen {
	return &TimeScreen{picker: picker, keys: keys, log: orDiscard(log), now: time.Now}
}

func (s *TimeScreen) Title() string { return "Time" }
func (s *TimeScreen) Scope() string { return core.ScopeTime }

func (s *TimeScreen) Picker() *core.TimePicker { return s.picker }

func (s *TimeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.keys.ActionFor(msg, s.Scope()) == "open-entry" {
			return s, push(NewEntryScreen("Set time", "9:30pm, 14:05:10, noon, now")), false
		}
		if msg.String() == "esc" {
			return s, nil, true
		}
		return s, s.observe(s.picker.HandleKey(msg.String())), false
	case core.SetValueMsg:
		return s, s.adopt(msg), false
	case core.ClearValueMsg:
		s.picker.SetValue("")
		s.picker.SetSelectMode(core.SelectHour)
		return s, core.StatusCmd("Cleared"), false
	case core.ApplyRulesMsg:
		s.picker.SetRules(msg.Rules)
		return s, core.StatusCmd("Applied " + msg.Name), false
	}
	return s, nil, false
}

func (s *TimeScreen) observe(events []core.Event) tea.Cmd {
	return observe(s.log, events, func(e core.Event) tea.Cmd {
		return core.ConfirmCmd(KindTime, e.Text)
	})
}

func (s *TimeScreen) adopt(msg core.SetValueMsg) tea.Cmd {
	t, err := resolveTime(s.picker, msg.Text, s.now())
	if err != nil {
		return core.ErrorCmd(err)
	}
	s.picker.SetFields(t)
	text, ok := s.picker.Value()
	if !ok {
		return core.StatusCmd("Set " + s.picker.Title().String())
	}
	if msg.Confirm {
		s.picker.MarkConfirmed()
		return core.ConfirmCmd(KindTime, text)
	}
	return core.StatusCmd("Set " + text)
}

// resolveTime reads typed text and checks it against the picker's rules.
func resolveTime(p *core.TimePicker, text string, now time.Time) (core.Time, error) {
	t := core.ResolveInput(text, now)
	if t.IsZero() {
		return core.Time{}, fmt.Errorf("cannot read %q as a time", strings.TrimSpace(text))
	}
	if !p.Accepts(t) {
		return core.Time{}, fmt.Errorf("%s is not an allowed time", strings.TrimSpace(text))
	}
	return t, nil
}

func (s *TimeScreen) clock() clock {
	return clock{picker: s.picker, cols: faceCols(s.width-4, s.height-3)}
}

// The clock block starts inside the box border and padding.
const clockLeft, clockTop = 2, 1

func (s *TimeScreen) View(width, height int) string {
	s.width, s.height = width, height
	c := s.clock()
	box := widgets.Box{Content: c.render(), Focused: !s.picker.Options().Disabled}
	out := box.Render(c.cols+4, c.Height()+2)
	return out + "\n" + hintStyle.Render(" "+s.hint())
}

func (s *TimeScreen) hint() string {
	mode := s.picker.Mode().String()
	if text, ok := s.picker.Value(); ok {
		return "editing " + mode + " · " + text
	}
	return "editing " + mode
}

func (s *TimeScreen) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	return s.observe(s.clock().mouse(msg, msg.X-clockLeft, msg.Y-clockTop))
}
