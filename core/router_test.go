package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct {
	scope string
	hits  int
	mouse []tea.MouseMsg
	msgs  []tea.Msg
}

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Scope() string {
	if s.scope == "" {
		return "screen:test"
	}
	return s.scope
}

func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	s.msgs = append(s.msgs, msg)
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *fakeScreen) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	s.mouse = append(s.mouse, msg)
	return nil
}

func TestOverlayGetsKeyBeforeRoot(t *testing.T) {
	root := &fakeScreen{}
	m := NewModel("test", root, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	overlay := &fakeScreen{}
	m.PushScreen(overlay)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if overlay.hits != 1 {
		t.Fatalf("overlay should handle key first")
	}
	if root.hits != 0 {
		t.Fatalf("root should not receive key while an overlay is open")
	}
	if updated.Screens() != 2 {
		t.Fatalf("overlay should remain open")
	}
}

func TestOverlayCanPopItself(t *testing.T) {
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	m.PushScreen(&fakeScreen{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.Screens() != 1 {
		t.Fatalf("expected overlay to pop on esc")
	}
	if cmd != nil {
		t.Fatalf("popping an overlay should not quit")
	}
}

func TestPoppingRootQuits(t *testing.T) {
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).Screens() != 0 || cmd == nil {
		t.Fatalf("expected quit after the root screen closed")
	}
	if _, ok := next.(Model).Result(); ok {
		t.Fatalf("cancelled run should have no result")
	}
}

func TestMouseIsBodyRelativeAndRootOnly(t *testing.T) {
	root := &fakeScreen{}
	m := NewModel("test", root, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	next, _ = m.Update(tea.MouseMsg{X: 10, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if len(root.mouse) != 1 || root.mouse[0].Y != 7-m.bodyTop() || root.mouse[0].X != 10 {
		t.Fatalf("mouse = %+v", root.mouse)
	}

	m.PushScreen(&fakeScreen{})
	_, _ = m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(root.mouse) != 1 {
		t.Fatalf("root received mouse under an overlay")
	}
}

func TestConfirmedStoresResultAndRunsHook(t *testing.T) {
	var seen []ConfirmedMsg
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil)
	m.OnConfirm = func(c ConfirmedMsg) tea.Cmd {
		seen = append(seen, c)
		return nil
	}
	next, cmd := m.Update(ConfirmedMsg{Kind: "time", Value: "09:30"})
	got, ok := next.(Model).Result()
	if !ok || got.Value != "09:30" || len(seen) != 1 {
		t.Fatalf("result = %+v, %v, hook calls %d", got, ok, len(seen))
	}
	if cmd != nil {
		t.Fatalf("expected no follow-up without ExitOnConfirm")
	}

	m.ExitOnConfirm = true
	_, cmd = m.Update(ConfirmedMsg{Kind: "time", Value: "10:00"})
	if cmd == nil {
		t.Fatalf("expected quit sequence with ExitOnConfirm")
	}
}

func TestGlobalActionsOpenOverlays(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	m := NewModel("test", &fakeScreen{scope: ScopeTime}, keys, NewCommandRegistry(nil), nil)
	m.OpenCommandModal = func(m *Model, scope string) Screen { return &fakeScreen{scope: ScopeCommand} }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = next.(Model)
	if m.Screens() != 2 || m.ActiveScope() != ScopeCommand {
		t.Fatalf("palette did not open: %d screens, scope %s", m.Screens(), m.ActiveScope())
	}

	// q is not quit inside an overlay.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if next.(Model).Screens() != 2 || cmd != nil {
		t.Fatalf("q leaked out of the overlay")
	}
}
