package screens

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

var dateTimeLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// DateTimeScreen shows a calendar and a clock side by side. The tab bar
// decides which of them takes the keyboard.
type DateTimeScreen struct {
	picker *core.DateTimePicker
	keys   *core.KeyRegistry
	log    *slog.Logger
	now    func() time.Time

	width, height int
}

func NewDateTimeScreen(picker *core.DateTimePicker, keys *core.KeyRegistry, log *slog.Logger) *DateTimeScreen {
	return &DateTimeScreen{picker: picker, keys: keys, log: orDiscard(log), now: time.Now}
}

func (s *DateTimeScreen) Title() string { return "Date & time" }
func (s *DateTimeScreen) Scope() string { return core.ScopeDateTime }

func (s *DateTimeScreen) Picker() *core.DateTimePicker { return s.picker }

func (s *DateTimeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.keys.ActionFor(msg, s.Scope()) == "open-entry" {
			return s, push(NewEntryScreen("Set date and time", "2024-03-09 14:30, 9:30pm, now")), false
		}
		if msg.String() == "esc" {
			return s, nil, true
		}
		return s, s.observe(s.picker.HandleKey(msg.String())), false
	case core.SetValueMsg:
		return s, s.adopt(msg), false
	case core.ClearValueMsg:
		tp := s.picker.TimePicker()
		tp.SetValue("")
		tp.SetSelectMode(core.SelectHour)
		return s, core.StatusCmd("Cleared"), false
	case core.ApplyRulesMsg:
		s.picker.TimePicker().SetRules(msg.Rules)
		return s, core.StatusCmd("Applied " + msg.Name), false
	}
	return s, nil, false
}

func (s *DateTimeScreen) observe(events []core.Event) tea.Cmd {
	return observe(s.log, events, func(core.Event) tea.Cmd {
		return s.confirm()
	})
}

func (s *DateTimeScreen) confirm() tea.Cmd {
	v, ok := s.picker.Value()
	if !ok {
		return nil
	}
	return core.ConfirmCmd(KindDateTime, s.format(v))
}

func (s *DateTimeScreen) format(v time.Time) string {
	if s.picker.TimePicker().Options().UseSeconds {
		return v.Format(time.DateTime)
	}
	return v.Format("2006-01-02 15:04")
}

// adopt takes a full date and time, or a time of day that keeps the
// current date.
func (s *DateTimeScreen) adopt(msg core.SetValueMsg) tea.Cmd {
	text := strings.TrimSpace(msg.Text)
	tp := s.picker.TimePicker()
	if v, ok := ParseDateTime(text, s.now()); ok {
		if !tp.Accepts(core.TimeOf(v)) {
			return core.ErrorCmd(fmt.Errorf("%s is not an allowed time", s.format(v)))
		}
		s.picker.SetValue(v)
	} else {
		t, err := resolveTime(tp, text, s.now())
		if err != nil {
			return core.ErrorCmd(err)
		}
		tp.SetFields(t)
	}
	v, ok := s.picker.Value()
	switch {
	case !ok:
		return core.StatusCmd("Set " + s.picker.DateTitle())
	case msg.Confirm:
		tp.MarkConfirmed()
		return s.confirm()
	default:
		return core.StatusCmd("Set " + s.format(v))
	}
}

// ParseDateTime reads a full local date and time, or "now".
func ParseDateTime(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "now") {
		return now, true
	}
	for _, layout := range dateTimeLayouts {
		if v, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return v, true
		}
	}
	return time.Time{}, false
}

func (s *DateTimeScreen) clock() clock {
	return clock{
		picker: s.picker.TimePicker(),
		cols:   faceCols(s.width-widgets.CalendarWidth-12, s.height-5),
	}
}

func (s *DateTimeScreen) calendar() widgets.Calendar {
	return widgets.Calendar{Selected: s.picker.Date()}
}

// The boxes start below the tab bar and the summary line.
const dateTimeBoxTop = 2

func (s *DateTimeScreen) stack() (widgets.HStack, int) {
	c := s.clock()
	active := s.picker.Tab()
	height := max(8, c.Height()) + 2
	calBox := widgets.Box{Content: s.calendar().Render(), Focused: active == core.TabDate}
	clockBox := widgets.Box{Content: c.render(), Focused: active == core.TabTime}
	calW, clockW := widgets.CalendarWidth+4, c.cols+4
	h := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Text(calBox.Render(calW, height)),
			widgets.Text(clockBox.Render(clockW, height)),
		},
		// The half cell keeps rounding from shaving a border off either box.
		Ratios: []float64{float64(calW) + 0.5, float64(clockW) + 0.5},
		Gap:    2,
	}
	return h, calW + clockW + 1 + h.Gap
}

func (s *DateTimeScreen) tabs() widgets.TabBar {
	return widgets.TabBar{
		Labels: []string{core.TabDate.String(), core.TabTime.String()},
		Active: int(s.picker.Tab()),
	}
}

func (s *DateTimeScreen) View(width, height int) string {
	s.width, s.height = width, height
	summary := s.picker.DateTitle() + "  " + s.picker.TimePicker().Title().String()
	h, w := s.stack()
	return strings.Join([]string{
		s.tabs().Render(),
		hintStyle.Render(" " + summary),
		h.Render(w, height-dateTimeBoxTop),
	}, "\n")
}

func (s *DateTimeScreen) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if i := s.tabs().HitTest(msg.X); i >= 0 {
			return s.observe(s.picker.SwitchTab(core.DateTimeTab(i)))
		}
		return nil
	}
	h, w := s.stack()
	offsets := h.Offsets(w)
	col, row := msg.X, msg.Y-dateTimeBoxTop-clockTop
	if col < offsets[1] {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		day, ok := s.calendar().DayAt(col-offsets[0]-clockLeft, row)
		if !ok {
			return nil
		}
		events := s.picker.SwitchTab(core.TabDate)
		events = append(events, s.picker.StepDate(day-s.picker.Date().Day())...)
		return s.observe(events)
	}
	var events []core.Event
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		events = s.picker.SwitchTab(core.TabTime)
	}
	events = append(events, s.clock().mouse(msg, col-offsets[1]-clockLeft, row)...)
	return s.observe(events)
}
