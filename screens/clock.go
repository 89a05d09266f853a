package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

const (
	minFaceCols = 15
	maxFaceCols = 61
)

// clock draws one time picker as a title line, the face and an optional
// AM/PM row, and routes pointer input landing on any of them. Coordinates
// are relative to the top-left of the rendered block.
type clock struct {
	picker *core.TimePicker
	cols   int
}

// faceCols picks an odd face width that fits in width x height cells,
// leaving room for the title and period rows.
func faceCols(width, height int) int {
	cols := min(width, 2*(height-4))
	cols = max(minFaceCols, min(maxFaceCols, cols))
	if cols%2 == 0 {
		cols--
	}
	return cols
}

func (c clock) face() widgets.Face {
	p := c.picker
	d, s := p.Dial(), p.DialState()
	ticks := d.Ticks(s)
	unset := d.Indeterminate(s)
	marks := make([]widgets.Mark, 0, len(ticks))
	for _, t := range ticks {
		marks = append(marks, widgets.Mark{
			Label:    t.Label,
			X:        t.Position.X,
			Y:        t.Position.Y,
			Active:   t.Active && !unset,
			Disabled: t.Disabled,
		})
	}
	hand := d.PositionFor(s, d.Value(s))
	opts := p.Options()
	return widgets.Face{
		Marks:    marks,
		HandX:    hand.X,
		HandY:    hand.Y,
		ShowHand: !unset,
		Cols:     c.cols,
		Rows:     c.cols / 2,
		Radius:   opts.InnerSize / opts.Size,
		Dimmed:   opts.Disabled,
	}
}

func (c clock) title() (widgets.TitleBar, []core.TitleSegment) {
	segs := c.picker.Title().Segments()
	bar := widgets.TitleBar{Segments: make([]widgets.Segment, 0, len(segs))}
	for _, s := range segs {
		bar.Segments = append(bar.Segments, widgets.Segment{
			Label:  s.Label,
			Active: s.Active,
			Locked: s.Locked,
			Gap:    s.Kind == core.SegmentPeriod,
		})
	}
	return bar, segs
}

// periodRow is the AM/PM switch under the face. It is empty for 24-hour
// pickers and when the switch lives in the title.
func (c clock) periodRow() (widgets.TitleBar, []core.Period) {
	p := c.picker
	opts := p.Options()
	if !p.AmPm() || opts.AmPmInTitle {
		return widgets.TitleBar{}, nil
	}
	periods := []core.Period{core.PeriodAM, core.PeriodPM}
	bar := widgets.TitleBar{}
	for i, period := range periods {
		bar.Segments = append(bar.Segments, widgets.Segment{
			Label:  strings.ToUpper(period.String()),
			Active: p.Period() == period,
			Locked: opts.Disabled || opts.Readonly,
			Gap:    i > 0,
		})
	}
	return bar, periods
}

func (c clock) faceTop() int   { return 2 }
func (c clock) periodTop() int { return c.faceTop() + c.cols/2 + 1 }

// Height is the number of lines render produces.
func (c clock) Height() int {
	if _, periods := c.periodRow(); len(periods) > 0 {
		return c.periodTop() + 1
	}
	return c.faceTop() + c.cols/2
}

func (c clock) render() string {
	bar, _ := c.title()
	lines := []string{bar.Render(), "", c.face().Render()}
	if period, periods := c.periodRow(); len(periods) > 0 {
		lines = append(lines, "", period.Render())
	}
	return strings.Join(lines, "\n")
}

// point maps a face cell to dial coordinates.
func (c clock) point(f widgets.Face, col, row int) core.Point {
	fx, fy := f.CellFraction(col, row)
	size := c.picker.Options().Size
	return core.Point{X: fx * size, Y: fy * size}
}

// mouse applies a pointer event at col, row.
func (c clock) mouse(msg tea.MouseMsg, col, row int) []core.Event {
	p := c.picker
	f := c.face()
	fc, fr := col, row-c.faceTop()
	onFace := f.Contains(fc, fr)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if onFace {
				return p.Wheel(1)
			}
		case tea.MouseButtonWheelDown:
			if onFace {
				return p.Wheel(-1)
			}
		case tea.MouseButtonLeft:
			if row == 0 {
				bar, segs := c.title()
				if i := bar.HitTest(col); i >= 0 {
					return p.Click(segs[i])
				}
				return nil
			}
			if onFace {
				return p.PointerDown(c.point(f, fc, fr))
			}
			if row == c.periodTop() {
				bar, periods := c.periodRow()
				if i := bar.HitTest(col); i >= 0 && !bar.Segments[i].Locked {
					return p.SetPeriod(periods[i])
				}
			}
		}
	case tea.MouseActionMotion:
		if !p.Dragging() {
			return nil
		}
		if onFace {
			return p.PointerMove(c.point(f, fc, fr))
		}
		return p.PointerLeave()
	case tea.MouseActionRelease:
		if p.Dragging() {
			return p.PointerUp()
		}
	}
	return nil
}
