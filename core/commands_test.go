package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"screen:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"screen:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), reg, nil)
	resA := reg.Search("", "screen:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in screen:a, got %+v", resA)
	}
	resB := reg.Search("", "screen:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in screen:b, got %+v", resB)
	}
}

func TestDefaultCommandsDisableMissingOverlays(t *testing.T) {
	reg := NewCommandRegistry(DefaultCommands())
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), reg, nil)

	var history CommandResult
	for _, r := range reg.Search("history", ScopeTime, &m) {
		if r.CommandID == "history" {
			history = r
		}
	}
	if !history.Disabled {
		t.Fatalf("history should be disabled without a store: %+v", history)
	}

	msg := reg.Execute("set-noon", &m)()
	if got, ok := msg.(SetValueMsg); !ok || got.Text != "noon" {
		t.Fatalf("set-noon produced %#v", msg)
	}
	if res := reg.Search("noon", ScopeColor, &m); len(res) != 0 {
		t.Fatalf("time commands leaked into the colour scope: %+v", res)
	}
}

func TestSearchRanksNameMatchesFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "alarm", Name: "Alarm", Description: "ring now"},
		{ID: "now", Name: "Now"},
		{ID: "nowish", Name: "Nowish"},
		{ID: "history", Name: "History"},
		{ID: "off", Name: "Now off", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), reg, nil)

	var ids []string
	for _, r := range reg.Search("now", "screen:a", &m) {
		ids = append(ids, r.CommandID)
	}
	want := []string{"now", "nowish", "alarm", "off"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ranking (-want +got):\n%s", diff)
	}

	res := reg.Search("histroy", "screen:a", &m)
	if len(res) != 0 {
		t.Fatalf("two edits should not match: %+v", res)
	}
	res = reg.Search("histry", "screen:a", &m)
	if len(res) != 1 || res[0].CommandID != "history" {
		t.Fatalf("one typo should still match: %+v", res)
	}
}

func TestSearchOffersTypedValue(t *testing.T) {
	reg := NewCommandRegistry(DefaultCommands())
	m := NewModel("test", &fakeScreen{}, NewKeyRegistry(nil), reg, nil)

	res := reg.Search("9:30", ScopeTime, &m)
	if len(res) == 0 || res[0].Name != "Set 09:30" {
		t.Fatalf("typed time not offered first: %+v", res)
	}
	msg := reg.Execute(res[0].CommandID, &m)()
	if got, ok := msg.(SetValueMsg); !ok || got.Text != "9:30" {
		t.Fatalf("typed value produced %#v", msg)
	}

	res = reg.Search("#ff8800", ScopeColor, &m)
	if len(res) == 0 || !strings.HasPrefix(res[0].Name, "Set rgba(255, 136, 0,") {
		t.Fatalf("typed colour not offered: %+v", res)
	}

	for _, r := range reg.Search("noon", ScopeTime, &m) {
		if strings.HasPrefix(r.CommandID, setPrefix) {
			t.Fatalf("keywords are commands, not typed values: %+v", r)
		}
	}
}
