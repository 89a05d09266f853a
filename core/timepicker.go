package core

import "time"

type TimePickerOptions struct {
	Rules      Rules
	Format     Format
	UseSeconds bool
	Scrollable bool
	Disabled   bool
	Readonly   bool
	// AmPmInTitle moves the AM/PM switch from the face into the title.
	AmPmInTitle bool
	Rotate      float64
	Size        float64
	InnerSize   float64
}

// TimePicker ties a clock face and a title to one value. Every mutating
// call returns the events the host should observe, in order.
type TimePicker struct {
	opts      TimePickerOptions
	chain     Chain
	input     Time
	confirmed Time
	period    Period
	mode      SelectMode
	dragging  bool
	pending   Field
}

func NewTimePicker(opts TimePickerOptions) *TimePicker {
	if opts.Size <= 0 {
		opts.Size = 290
	}
	if opts.InnerSize <= 0 || opts.InnerSize > opts.Size {
		opts.InnerSize = opts.Size * 0.9
	}
	return &TimePicker{
		opts:   opts,
		chain:  NewChain(opts.Rules),
		mode:   SelectHour,
		period: PeriodAM,
	}
}

func (p *TimePicker) Options() TimePickerOptions { return p.opts }
func (p *TimePicker) Time() Time                 { return p.input }
func (p *TimePicker) Period() Period             { return p.period }
func (p *TimePicker) Mode() SelectMode           { return p.mode }
func (p *TimePicker) Dragging() bool             { return p.dragging }
func (p *TimePicker) AmPm() bool                 { return p.opts.Format == FormatAmPm }

// Value is the formatted value, or false while a unit is unset.
func (p *TimePicker) Value() (string, bool) {
	return FormatTime(p.input, p.opts.UseSeconds)
}

// SetValue replaces the value from the host without emitting events. The
// host value is not a confirmation, so committing it unchanged still confirms.
func (p *TimePicker) SetValue(s string) {
	p.reset(ParseTime(s))
}

func (p *TimePicker) SetTime(t time.Time) {
	p.reset(TimeOf(t))
}

// SetFields is SetValue for an already parsed time.
func (p *TimePicker) SetFields(t Time) {
	p.reset(t)
}

// Accepts reports whether every unit set on t passes the rules.
func (p *TimePicker) Accepts(t Time) bool {
	for _, mode := range []SelectMode{SelectHour, SelectMinute, SelectSecond} {
		if mode == SelectSecond && !p.opts.UseSeconds {
			break
		}
		if v, ok := t.Field(mode).Get(); ok && !p.chain.Allowed(mode, t, v) {
			return false
		}
	}
	return true
}

func (p *TimePicker) reset(t Time) {
	if !p.opts.UseSeconds && t.Second.Valid {
		t.Second = Unset()
	}
	p.input = t
	p.confirmed = Time{}
	p.period = PeriodOf(t.Hour)
	p.dragging = false
	p.pending = Unset()
}

// MarkConfirmed records the current value as confirmed by the host, so
// committing it again from the face does not repeat the confirmation.
func (p *TimePicker) MarkConfirmed() {
	p.confirmed = p.input
}

func (p *TimePicker) SetRules(r Rules) {
	p.opts.Rules = r
	p.chain = NewChain(r)
}

func (p *TimePicker) Allowed(mode SelectMode, v int) bool {
	return p.chain.Allowed(mode, p.input, v)
}

func (p *TimePicker) Dial() Dial {
	return Dial{
		Rules:      p.chain.For(p.input),
		AmPm:       p.AmPm(),
		UseSeconds: p.opts.UseSeconds,
		Rotate:     p.opts.Rotate,
		Size:       p.opts.Size,
		InnerSize:  p.opts.InnerSize,
		Disabled:   p.opts.Disabled,
		Readonly:   p.opts.Readonly,
		Scrollable: p.opts.Scrollable,
	}
}

func (p *TimePicker) DialState() DialState {
	return DialState{
		Time:     p.input,
		Period:   p.period,
		Mode:     p.mode,
		Dragging: p.dragging,
		Pending:  p.pending,
	}
}

func (p *TimePicker) Title() Title {
	return Title{
		Time:       p.input,
		Period:     p.period,
		Mode:       p.mode,
		AmPm:       p.AmPm(),
		ShowPeriod: p.AmPm() && p.opts.AmPmInTitle,
		UseSeconds: p.opts.UseSeconds,
		Disabled:   p.opts.Disabled,
		Readonly:   p.opts.Readonly,
	}
}

func (p *TimePicker) PointerDown(pt Point) []Event {
	return p.apply(p.Dial().PointerDown(p.DialState(), pt))
}

func (p *TimePicker) PointerMove(pt Point) []Event {
	return p.apply(p.Dial().PointerMove(p.DialState(), pt))
}

func (p *TimePicker) PointerUp() []Event {
	return p.apply(p.Dial().PointerUp(p.DialState()))
}

func (p *TimePicker) PointerLeave() []Event {
	return p.apply(p.Dial().PointerLeave(p.DialState()))
}

func (p *TimePicker) Wheel(steps int) []Event {
	return p.apply(p.Dial().Wheel(p.DialState(), steps))
}

func (p *TimePicker) Nudge(delta int) []Event {
	return p.apply(p.Dial().Nudge(p.DialState(), delta))
}

// Commit selects the value under the hand as if it had been clicked.
func (p *TimePicker) Commit() []Event {
	if p.opts.Disabled || p.opts.Readonly {
		return nil
	}
	d, s := p.Dial(), p.DialState()
	v := d.Value(s)
	if !d.Allowed(s, v) {
		return nil
	}
	s.Dragging = true
	s.Pending = Of(v)
	return p.apply(d.PointerUp(s))
}

// SetSelectMode is the title asking to edit another unit.
func (p *TimePicker) SetSelectMode(mode SelectMode) []Event {
	if p.opts.Disabled || mode == p.mode {
		return nil
	}
	if mode < SelectHour || mode > LastMode(p.opts.UseSeconds) {
		return nil
	}
	p.mode = mode
	p.dragging = false
	p.pending = Unset()
	return []Event{{Kind: EventSelectModeChanged, Mode: mode}}
}

// SetPeriod switches AM/PM. A set hour moves by twelve and snaps to the
// first allowed hour of the new half.
func (p *TimePicker) SetPeriod(period Period) []Event {
	if p.opts.Disabled || p.opts.Readonly || period == p.period {
		return nil
	}
	p.period = period
	events := []Event{{Kind: EventPeriodChanged, Period: period}}
	if h, ok := p.input.Hour.Get(); ok {
		if period == PeriodAM {
			h -= 12
		} else {
			h += 12
		}
		h = (h%24 + 24) % 24
		h = p.chain.FirstAllowed(SelectHour, p.input, h, p.AmPm())
		p.input.Hour = Of(h)
		events = p.appendInput(events)
	}
	return events
}

// apply adopts the dial's new state and expands its events into picker
// notifications.
func (p *TimePicker) apply(s DialState, events []Event) []Event {
	p.dragging = s.Dragging
	p.pending = s.Pending
	p.period = s.Period
	p.mode = s.Mode
	if len(events) == 0 {
		return nil
	}
	out := make([]Event, 0, len(events)+2)
	for _, e := range events {
		switch e.Kind {
		case EventTimeUpdated:
			p.input = p.input.With(e.Mode, Of(e.Value))
			out = p.appendInput(append(out, e))
		case EventUnitSelected:
			out = append(out, e)
			if e.Mode != LastMode(p.opts.UseSeconds) {
				continue
			}
			if text, ok := p.Value(); ok && !p.input.SameAs(p.confirmed, p.opts.UseSeconds) {
				p.confirmed = p.input
				out = append(out, Event{Kind: EventConfirmed, Time: p.input, Text: text})
			}
		default:
			out = append(out, e)
		}
	}
	return out
}

// appendInput adds an input event once every unit is set.
func (p *TimePicker) appendInput(events []Event) []Event {
	text, ok := p.Value()
	if !ok {
		return events
	}
	return append(events, Event{Kind: EventInput, Time: p.input, Text: text})
}

// HandleKey maps keyboard input onto the face.
func (p *TimePicker) HandleKey(key string) []Event {
	switch key {
	case "up", "k", "+", "=":
		return p.Nudge(1)
	case "down", "j", "-":
		return p.Nudge(-1)
	case "enter", " ", "space":
		return p.Commit()
	case "tab", "right", "l":
		return p.SetSelectMode(p.mode.Next(p.opts.UseSeconds))
	case "shift+tab", "left", "h":
		return p.SetSelectMode(p.mode.Prev())
	case "H":
		return p.SetSelectMode(SelectHour)
	case "M":
		return p.SetSelectMode(SelectMinute)
	case "S":
		return p.SetSelectMode(SelectSecond)
	case "a":
		if p.AmPm() {
			return p.SetPeriod(PeriodAM)
		}
	case "p":
		if p.AmPm() {
			return p.SetPeriod(PeriodPM)
		}
	}
	return nil
}
