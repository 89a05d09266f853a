package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") || !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected outer base rows preserved")
	}
}

func TestFaceRenderPlacesMarks(t *testing.T) {
	f := Face{
		Cols:   21,
		Rows:   11,
		Radius: 0.85,
		Marks: []Mark{
			{Label: "12", X: 0, Y: -1, Active: true},
			{Label: "6", X: 0, Y: 1},
			{Label: "3", X: 1, Y: 0},
		},
		ShowHand: true,
		HandX:    0,
		HandY:    -1,
	}
	lines := strings.Split(ansi.Strip(f.Render()), "\n")
	if len(lines) != 11 {
		t.Fatalf("rows = %d", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 21 {
			t.Fatalf("row %d width = %d", i, w)
		}
	}
	if !strings.Contains(lines[0], "12") {
		t.Fatalf("top row = %q", lines[0])
	}
	if !strings.Contains(lines[10], "6") {
		t.Fatalf("bottom row = %q", lines[10])
	}
	if !strings.Contains(lines[5], "●") || !strings.HasSuffix(strings.TrimRight(lines[5], " "), "3") {
		t.Fatalf("middle row = %q", lines[5])
	}
	if !strings.Contains(lines[3], "·") {
		t.Fatalf("expected the hand above the center, got %q", lines[3])
	}
}

func TestFaceCellFraction(t *testing.T) {
	f := Face{Cols: 40, Rows: 20}
	x, y := f.CellFraction(0, 0)
	if x != 0.5/40 || y != 0.5/20 {
		t.Fatalf("fraction = %v, %v", x, y)
	}
	if f.Contains(40, 0) || !f.Contains(39, 19) {
		t.Fatalf("bounds wrong")
	}
}

func TestTitleBarHitTest(t *testing.T) {
	bar := TitleBar{Segments: []Segment{
		{Label: "10"},
		{Label: ":", Locked: true},
		{Label: "05"},
		{Label: "AM", Gap: true},
		{Label: "PM", Gap: true},
	}}
	cases := map[int]int{0: 0, 1: 0, 2: 1, 3: 2, 5: -1, 6: 3, 8: -1, 9: 4, 12: -1}
	for col, want := range cases {
		if got := bar.HitTest(col); got != want {
			t.Errorf("HitTest(%d) = %d, want %d", col, got, want)
		}
	}
	if bar.Width() != 11 {
		t.Fatalf("width = %d", bar.Width())
	}
	if got := ansi.Strip(bar.Render()); got != "10:05 AM PM" {
		t.Fatalf("render = %q", got)
	}
}

func TestTabBarHitTest(t *testing.T) {
	bar := TabBar{Labels: []string{"Date", "Time"}}
	if got := ansi.Strip(bar.Render()); got != " Date │ Time " {
		t.Fatalf("render = %q", got)
	}
	cases := map[int]int{0: 0, 5: 0, 6: -1, 7: 1, 12: 1, 13: -1}
	for col, want := range cases {
		if got := bar.HitTest(col); got != want {
			t.Errorf("HitTest(%d) = %d, want %d", col, got, want)
		}
	}
}

func TestCalendar(t *testing.T) {
	out := ansi.Strip(Calendar{Selected: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}.Render())
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "March 2024") {
		t.Fatalf("header = %q", lines[0])
	}
	// March 2024 starts on a Friday.
	if lines[2] != strings.Repeat(" ", 13)+"1  2  3" {
		t.Fatalf("first week = %q", lines[2])
	}
	if len(lines) != 7 {
		t.Fatalf("weeks = %d", len(lines)-2)
	}
}

func TestCalendarDayAt(t *testing.T) {
	c := Calendar{Selected: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}
	cases := []struct {
		col, row int
		day      int
		ok       bool
	}{
		{12, 2, 1, true},
		{0, 3, 4, true},
		{1, 3, 4, true},
		{2, 3, 0, false},
		{0, 2, 0, false},
		{3, 7, 0, false},
		{0, 6, 25, true},
		{18, 6, 31, true},
		{5, 0, 0, false},
	}
	for _, tc := range cases {
		day, ok := c.DayAt(tc.col, tc.row)
		if day != tc.day || ok != tc.ok {
			t.Errorf("DayAt(%d, %d) = %d, %v; want %d, %v", tc.col, tc.row, day, ok, tc.day, tc.ok)
		}
	}
}

func TestHStackOffsets(t *testing.T) {
	h := HStack{Widgets: []Widget{Text("a"), Text("b")}, Ratios: []float64{1, 1}, Gap: 2}
	offs := h.Offsets(22)
	if len(offs) != 2 || offs[0] != 0 || offs[1] != 12 {
		t.Fatalf("offsets = %v", offs)
	}
	lines := strings.Split(h.Render(22, 1), "\n")
	if len(lines) != 1 || lines[0] != "a"+strings.Repeat(" ", 11)+"b"+strings.Repeat(" ", 9) {
		t.Fatalf("render = %q", lines)
	}
}
