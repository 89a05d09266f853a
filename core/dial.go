package core

import (
	"math"
	"strconv"
)

// InnerRadiusScale is the radius of the inner hour ring relative to the
// outer ring.
const InnerRadiusScale = 0.62

// Dial is the configuration of a clock face. It holds no mutable state; every
// operation takes a DialState and returns the next one with the events it
// produced.
type Dial struct {
	Rules      UnitRules
	AmPm       bool
	UseSeconds bool
	// Rotate offsets 12 o'clock clockwise, in degrees.
	Rotate float64
	// Size is the outer width of the face. InnerSize is the width of the
	// area holding the numbers. Pointer coordinates use the same units,
	// relative to the top-left corner, y growing downward.
	Size       float64
	InnerSize  float64
	Disabled   bool
	Readonly   bool
	Scrollable bool
}

type DialState struct {
	Time     Time
	Period   Period
	Mode     SelectMode
	Dragging bool
	// Pending is the last allowed value seen during the current drag.
	Pending Field
}

// Tick is one labelled mark on the face.
type Tick struct {
	Value    int
	Label    string
	Position Point
	Inner    bool
	Active   bool
	Disabled bool
}

func (d Dial) interactive() bool {
	return !d.Disabled && !d.Readonly
}

func (d Dial) hourMode(s DialState) bool {
	return s.Mode == SelectHour
}

// TwoRings is true for the 24-hour face, where 12-23 sit on an inner ring.
func (d Dial) TwoRings(s DialState) bool {
	return d.hourMode(s) && !d.AmPm
}

func (d Dial) Step(s DialState) int {
	if d.hourMode(s) {
		return 1
	}
	return 5
}

func (d Dial) Min(s DialState) int {
	if d.hourMode(s) && d.AmPm && s.Period == PeriodPM {
		return 12
	}
	return 0
}

func (d Dial) Max(s DialState) int {
	if !d.hourMode(s) {
		return 59
	}
	if d.AmPm && s.Period == PeriodAM {
		return 11
	}
	return 23
}

func (d Dial) UnitCount(s DialState) int {
	return d.Max(s) - d.Min(s) + 1
}

func (d Dial) UnitsPerRing(s DialState) int {
	if d.TwoRings(s) {
		return d.UnitCount(s) / 2
	}
	return d.UnitCount(s)
}

func (d Dial) DegreesPerUnit(s DialState) float64 {
	return 360 / float64(d.UnitsPerRing(s))
}

// Value is the unit being edited, or Min when it is unset.
func (d Dial) Value(s DialState) int {
	return s.Time.Field(s.Mode).Or(d.Min(s))
}

func (d Dial) Indeterminate(s DialState) bool {
	return !s.Time.Field(s.Mode).Valid
}

func (d Dial) IsInner(s DialState, v int) bool {
	return d.TwoRings(s) && v-d.Min(s) >= d.UnitsPerRing(s)
}

func (d Dial) HandScale(s DialState, v int) float64 {
	if d.IsInner(s, v) {
		return InnerRadiusScale
	}
	return 1
}

// HandAngle is the clockwise angle of the hand in degrees, in [0, 360).
func (d Dial) HandAngle(s DialState) float64 {
	a := math.Mod(d.Rotate+d.DegreesPerUnit(s)*float64(d.Value(s)-d.Min(s)), 360)
	if a < 0 {
		a += 360
	}
	return a
}

// PositionFor returns the offset of v from the center, normalised to the
// ring radius, with y growing downward.
func (d Dial) PositionFor(s DialState, v int) Point {
	rad := float64(v-d.Min(s))*d.DegreesPerUnit(s)*math.Pi/180 + d.Rotate*math.Pi/180
	scale := d.HandScale(s, v)
	return Point{
		X: math.Sin(rad) * scale,
		Y: -math.Cos(rad) * scale,
	}
}

func (d Dial) Allowed(s DialState, v int) bool {
	return d.Rules.Allowed(s.Mode, v)
}

func (d Dial) Label(s DialState, v int) string {
	if d.hourMode(s) && d.AmPm {
		return strconv.Itoa(Convert24to12(v))
	}
	return Pad(v)
}

func (d Dial) Ticks(s DialState) []Tick {
	lo, hi, step := d.Min(s), d.Max(s), d.Step(s)
	current := d.Value(s)
	ticks := make([]Tick, 0, (hi-lo)/step+1)
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, Tick{
			Value:    v,
			Label:    d.Label(s, v),
			Position: d.PositionFor(s, v),
			Inner:    d.IsInner(s, v),
			Active:   v == current,
			Disabled: d.Disabled || !d.Allowed(s, v),
		})
	}
	return ticks
}

// ValueAt maps a pointer position to a unit value and reports whether that
// value is allowed.
func (d Dial) ValueAt(s DialState, p Point) (int, bool) {
	center := Point{X: d.Size / 2, Y: -d.Size / 2}
	coords := Point{X: p.X, Y: -p.Y}
	handAngle := math.Mod(math.Floor(Angle(center, coords)-d.Rotate+360+0.5), 360)
	dpu := d.DegreesPerUnit(s)
	inside := d.TwoRings(s) &&
		Euclidean(center, coords) < (d.InnerSize+d.InnerSize*InnerRadiusScale)/4

	var value int
	if handAngle >= 360-dpu/2 {
		// Left half of the 12 o'clock mark.
		if inside {
			value = d.Max(s) - d.UnitsPerRing(s) + 1
		} else {
			value = d.Min(s)
		}
	} else {
		n := int(math.Floor(handAngle/dpu + 0.5))
		if inside {
			n += d.UnitsPerRing(s)
		}
		value = n%d.UnitCount(s) + d.Min(s)
	}
	return value, d.Allowed(s, value)
}

func (d Dial) PointerDown(s DialState, p Point) (DialState, []Event) {
	if !d.interactive() {
		return s, nil
	}
	s.Pending = Unset()
	s.Dragging = true
	return d.track(s, p)
}

func (d Dial) PointerMove(s DialState, p Point) (DialState, []Event) {
	if !d.interactive() || !s.Dragging {
		return s, nil
	}
	return d.track(s, p)
}

func (d Dial) PointerUp(s DialState) (DialState, []Event) {
	if !s.Dragging {
		return s, nil
	}
	s.Dragging = false
	v, ok := s.Pending.Get()
	s.Pending = Unset()
	if !ok || !d.Allowed(s, v) {
		return s, nil
	}
	s, events := d.update(s, v)
	events = append(events, Event{Kind: EventUnitSelected, Mode: s.Mode, Value: v, Time: s.Time})
	if next := s.Mode.Next(d.UseSeconds); next != s.Mode {
		s.Mode = next
		events = append(events, Event{Kind: EventSelectModeChanged, Mode: next})
	}
	return s, events
}

// PointerLeave ends a drag that left the face.
func (d Dial) PointerLeave(s DialState) (DialState, []Event) {
	if !s.Dragging {
		return s, nil
	}
	return d.PointerUp(s)
}

func (d Dial) track(s DialState, p Point) (DialState, []Event) {
	v, ok := d.ValueAt(s, p)
	if !ok {
		return s, nil
	}
	s.Pending = Of(v)
	return d.update(s, v)
}

// Wheel steps by the sign of steps, skipping values that are not allowed.
func (d Dial) Wheel(s DialState, steps int) (DialState, []Event) {
	if !d.Scrollable || !d.interactive() {
		return s, nil
	}
	return d.Nudge(s, steps)
}

// Nudge moves one allowed unit in the direction of delta regardless of the
// scrollable flag. Keyboard stepping uses it.
func (d Dial) Nudge(s DialState, delta int) (DialState, []Event) {
	if !d.interactive() || delta == 0 {
		return s, nil
	}
	v, ok := d.nextAllowed(s, delta)
	if !ok {
		return s, nil
	}
	return d.update(s, v)
}

func (d Dial) nextAllowed(s DialState, delta int) (int, bool) {
	dir := 1
	if delta < 0 {
		dir = -1
	}
	lo, count := d.Min(s), d.UnitCount(s)
	start := d.Value(s)
	v := start
	for {
		v = ((v+dir-lo)%count+count)%count + lo
		if v == start {
			return start, false
		}
		if d.Allowed(s, v) {
			return v, true
		}
	}
}

// SetPeriod switches the AM/PM half shown on an am/pm face.
func (d Dial) SetPeriod(s DialState, p Period) (DialState, []Event) {
	if !d.interactive() || s.Period == p {
		return s, nil
	}
	s.Period = p
	return s, []Event{{Kind: EventPeriodChanged, Period: p}}
}

func (d Dial) update(s DialState, v int) (DialState, []Event) {
	next := s.Time.With(s.Mode, Of(v))
	if next.Hour.Valid {
		s.Period = PeriodOf(next.Hour)
	}
	if next == s.Time {
		return s, nil
	}
	s.Time = next
	return s, []Event{{Kind: EventTimeUpdated, Mode: s.Mode, Value: v, Time: next}}
}
