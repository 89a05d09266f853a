package screens

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

// MaxSwatches bounds the saved colour list.
const MaxSwatches = 8

type swatchesSavedMsg struct {
	err error
}

// ColorScreen edits a colour as four channel fields.
type ColorScreen struct {
	value    *core.RGBAInput
	inputs   []textinput.Model
	focus    int
	keys     *core.KeyRegistry
	log      *slog.Logger
	swatches []string
	next     int
	save     func([]string) error
}

// NewColorScreen starts from initial. save persists the swatch list after
// ctrl+s and may be nil.
func NewColorScreen(initial core.RGBA, swatches []string, save func([]string) error, keys *core.KeyRegistry, log *slog.Logger) *ColorScreen {
	s := &ColorScreen{
		value:    core.NewRGBAInput(initial),
		keys:     keys,
		log:      orDiscard(log),
		swatches: slices.Clone(swatches),
		save:     save,
	}
	for _, ch := range core.Channels {
		inp := textinput.New()
		inp.Prompt = ""
		inp.CharLimit = 3
		if ch == core.ChannelA {
			inp.CharLimit = 4
		}
		inp.Width = 4
		s.inputs = append(s.inputs, inp)
	}
	s.inputs[0].Focus()
	s.sync()
	return s
}

func (s *ColorScreen) Title() string { return "Colour" }
func (s *ColorScreen) Scope() string { return core.ScopeColor }

func (s *ColorScreen) Value() core.RGBA { return s.value.Value() }

// sync rewrites every field from the current value.
func (s *ColorScreen) sync() {
	v := s.value.Value()
	for i, ch := range core.Channels {
		s.inputs[i].SetValue(v.ChannelText(ch))
	}
}

func (s *ColorScreen) setFocus(i int) {
	n := len(s.inputs)
	s.inputs[s.focus].Blur()
	s.focus = (i%n + n) % n
	s.inputs[s.focus].Focus()
}

// set replaces the whole colour and refreshes the fields.
func (s *ColorScreen) set(c core.RGBA) tea.Cmd {
	if !s.value.SetValue(c) {
		return nil
	}
	s.sync()
	return s.observe()
}

func (s *ColorScreen) observe() tea.Cmd {
	return observe(s.log, []core.Event{s.value.Event()}, nil)
}

func (s *ColorScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch s.keys.ActionFor(msg, s.Scope()) {
		case "next-channel":
			s.setFocus(s.focus + 1)
			return s, nil, false
		case "save-swatch":
			return s, s.saveSwatch(), false
		case "next-swatch":
			return s, s.cycleSwatch(), false
		case "commit":
			return s, core.ConfirmCmd(KindColor, s.value.Value().String()), false
		}
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "shift+tab":
			s.setFocus(s.focus - 1)
			return s, nil, false
		}
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		ch := core.Channels[s.focus]
		if _, changed := s.value.Update(ch, s.inputs[s.focus].Value()); changed {
			return s, tea.Batch(cmd, s.observe()), false
		}
		return s, cmd, false
	case swatchesSavedMsg:
		if msg.err != nil {
			return s, core.ErrorCmd(fmt.Errorf("save swatches: %w", msg.err)), false
		}
		return s, core.StatusCmd("Swatch saved"), false
	case core.SetValueMsg:
		c, err := core.ParseRGBA(msg.Text)
		if err != nil {
			return s, core.ErrorCmd(err), false
		}
		cmd := s.set(c)
		if msg.Confirm {
			cmd = tea.Batch(cmd, core.ConfirmCmd(KindColor, c.String()))
		}
		return s, cmd, false
	case core.ClearValueMsg:
		return s, tea.Batch(s.set(core.RGBA{A: 1}), core.StatusCmd("Cleared")), false
	}
	return s, nil, false
}

// saveSwatch puts the current colour first in the list, dropping any older
// copy and anything past MaxSwatches.
func (s *ColorScreen) saveSwatch() tea.Cmd {
	current := s.value.Value().String()
	list := []string{current}
	for _, sw := range s.swatches {
		if sw != current && len(list) < MaxSwatches {
			list = append(list, sw)
		}
	}
	s.swatches = list
	s.next = 0
	if s.save == nil {
		return core.StatusCmd("Swatch kept for this session")
	}
	save, snapshot := s.save, slices.Clone(list)
	return func() tea.Msg {
		return swatchesSavedMsg{err: save(snapshot)}
	}
}

func (s *ColorScreen) cycleSwatch() tea.Cmd {
	if len(s.swatches) == 0 {
		return core.StatusCmd("No saved swatches")
	}
	sw := s.swatches[s.next%len(s.swatches)]
	s.next = (s.next + 1) % len(s.swatches)
	c, err := core.ParseRGBA(sw)
	if err != nil {
		return core.ErrorCmd(err)
	}
	return s.set(c)
}

func (s *ColorScreen) View(width, height int) string {
	v := s.value.Value()
	row := widgets.ColorRow{Hex: v.Hex()}
	for i, ch := range core.Channels {
		row.Fields = append(row.Fields, widgets.ChannelField{
			Label:   ch.Label(),
			View:    s.inputs[i].View(),
			Focused: i == s.focus,
		})
	}
	for _, sw := range s.swatches {
		if c, err := core.ParseRGBA(sw); err == nil {
			row.Swatches = append(row.Swatches, c.Hex())
		}
	}
	box := widgets.Box{Content: row.Render(), Focused: true}
	return box.Render(min(width, 48), 8) + "\n" + hintStyle.Render(" "+v.String())
}
