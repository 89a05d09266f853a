package core

import (
	"strconv"
	"strings"
)

// Title is the digital readout above the face. Each unit is a button that
// selects it for editing.
type Title struct {
	Time       Time
	Period     Period
	Mode       SelectMode
	AmPm       bool
	ShowPeriod bool
	UseSeconds bool
	Disabled   bool
	Readonly   bool
}

type TitleSegmentKind int

const (
	SegmentUnit TitleSegmentKind = iota
	SegmentSeparator
	SegmentPeriod
)

type TitleSegment struct {
	Kind   TitleSegmentKind
	Label  string
	Mode   SelectMode
	Period Period
	Active bool
	// Locked segments render but ignore clicks.
	Locked bool
}

func (t Title) HourLabel() string {
	h, ok := t.Time.Hour.Get()
	if !ok {
		return "--"
	}
	if t.AmPm {
		return strconv.Itoa(Convert24to12(h))
	}
	return Pad(h)
}

func (t Title) MinuteLabel() string { return t.Time.Minute.String() }
func (t Title) SecondLabel() string { return t.Time.Second.String() }

func (t Title) Segments() []TitleSegment {
	unit := func(label string, mode SelectMode) TitleSegment {
		return TitleSegment{Kind: SegmentUnit, Label: label, Mode: mode, Active: t.Mode == mode, Locked: t.Disabled}
	}
	sep := TitleSegment{Kind: SegmentSeparator, Label: ":", Locked: true}
	out := []TitleSegment{
		unit(t.HourLabel(), SelectHour),
		sep,
		unit(t.MinuteLabel(), SelectMinute),
	}
	if t.UseSeconds {
		out = append(out, sep, unit(t.SecondLabel(), SelectSecond))
	}
	if t.ShowPeriod {
		for _, p := range []Period{PeriodAM, PeriodPM} {
			out = append(out, TitleSegment{
				Kind:   SegmentPeriod,
				Label:  strings.ToUpper(p.String()),
				Period: p,
				Active: t.Period == p,
				Locked: t.Disabled || t.Readonly,
			})
		}
	}
	return out
}

func (t Title) String() string {
	parts := []string{t.HourLabel(), ":", t.MinuteLabel()}
	if t.UseSeconds {
		parts = append(parts, ":", t.SecondLabel())
	}
	s := strings.Join(parts, "")
	if t.ShowPeriod {
		s += " " + strings.ToUpper(t.Period.String())
	}
	return s
}

// Click applies a title segment to the picker.
func (p *TimePicker) Click(seg TitleSegment) []Event {
	if seg.Locked {
		return nil
	}
	switch seg.Kind {
	case SegmentUnit:
		return p.SetSelectMode(seg.Mode)
	case SegmentPeriod:
		return p.SetPeriod(seg.Period)
	}
	return nil
}
