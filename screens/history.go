package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/database/repository"
)

// HistoryStore is the part of the history repository the screen needs.
type HistoryStore interface {
	Recent(ctx context.Context, kind string, limit int) ([]repository.Entry, error)
	Delete(ctx context.Context, id string) error
}

const historyTimeout = 3 * time.Second

type historyLoadedMsg struct {
	entries []repository.Entry
	err     error
}

type historyItem struct {
	entry repository.Entry
}

func (i historyItem) Title() string { return i.entry.Value }
func (i historyItem) Description() string {
	return i.entry.Kind + " · " + i.entry.CreatedAt.Local().Format("Mon Jan 2 15:04")
}
func (i historyItem) FilterValue() string { return i.entry.Value }

// HistoryScreen lists recently confirmed values of one kind. Choosing one
// loads it into the root picker without confirming it.
type HistoryScreen struct {
	kind    string
	store   HistoryStore
	list    list.Model
	loading bool
}

func NewHistoryScreen(kind string, store HistoryStore) *HistoryScreen {
	lst := list.New(nil, list.NewDefaultDelegate(), 40, 12)
	lst.Title = "History"
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.KeyMap.Quit.SetEnabled(false)
	return &HistoryScreen{kind: kind, store: store, list: lst, loading: true}
}

func (s *HistoryScreen) Title() string { return "History" }
func (s *HistoryScreen) Scope() string { return core.ScopeHistory }

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	store, kind := s.store, s.kind
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		entries, err := store.Recent(ctx, kind, 0)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (s *HistoryScreen) remove(id string) tea.Cmd {
	store, kind := s.store, s.kind
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		if err := store.Delete(ctx, id); err != nil {
			return historyLoadedMsg{err: fmt.Errorf("delete history entry: %w", err)}
		}
		entries, err := store.Recent(ctx, kind, 0)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loading = false
		if msg.err != nil {
			return s, core.ErrorCmd(msg.err), false
		}
		items := make([]list.Item, 0, len(msg.entries))
		for _, e := range msg.entries {
			items = append(items, historyItem{entry: e})
		}
		return s, s.list.SetItems(items), false
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(historyItem)
			if !ok {
				return s, nil, true
			}
			return s, core.SetValueCmd(it.entry.Value), true
		case "d", "delete":
			if it, ok := s.list.SelectedItem().(historyItem); ok {
				return s, s.remove(it.entry.ID), false
			}
			return s, nil, false
		}
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd, false
}

func (s *HistoryScreen) View(width, height int) string {
	if s.loading {
		return "History\n\n" + hintStyle.Render("loading…")
	}
	if len(s.list.Items()) == 0 {
		return "History\n\n" + hintStyle.Render("nothing confirmed yet")
	}
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-1))
	return s.list.View() + "\n" + hintStyle.Render("enter load · d delete · esc close")
}
