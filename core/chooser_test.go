package core

import "testing"

func TestChooserFiltersAndRanks(t *testing.T) {
	c := NewChooser("Presets", []ChoiceItem{
		{ID: "1", Label: "Office hours", Meta: "09:00-17:30"},
		{ID: "2", Label: "Quarter hours"},
		{ID: "3", Label: "Night shift"},
	})
	for _, k := range []string{"h", "o", "u"} {
		_ = c.HandleKey(k)
	}
	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("filtered = %+v", items)
	}

	c.SetQuery("night")
	if item, ok := c.Current(); !ok || item.ID != "3" {
		t.Fatalf("current = %+v, %v", item, ok)
	}
	res := c.HandleKey("enter")
	if res.Action != ChooserSelected || res.Item.ID != "3" {
		t.Fatalf("enter = %+v", res)
	}
}

func TestChooserCursorAndBackspace(t *testing.T) {
	c := NewChooser("Recent", []ChoiceItem{{ID: "a", Label: "09:30"}, {ID: "b", Label: "10:45"}})
	if c.HandleKey("up").Action != ChooserNone {
		t.Fatalf("cursor moved above the first row")
	}
	if c.HandleKey("down").Action != ChooserMoved || c.Cursor() != 1 {
		t.Fatalf("cursor did not move down")
	}
	_ = c.HandleKey("x")
	if len(c.Items()) != 0 || c.Cursor() != 0 {
		t.Fatalf("unmatched query should empty the list")
	}
	if c.HandleKey("enter").Action != ChooserNone {
		t.Fatalf("enter on an empty list selected something")
	}
	_ = c.HandleKey("backspace")
	if len(c.Items()) != 2 {
		t.Fatalf("backspace did not restore the list")
	}
	if c.HandleKey("esc").Action != ChooserCancelled {
		t.Fatalf("esc did not cancel")
	}
}
