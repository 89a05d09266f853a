package core

import "strings"

// Field is a time unit that is either unset or holds a value.
type Field struct {
	Value int
	Valid bool
}

func Unset() Field { return Field{} }

func Of(v int) Field { return Field{Value: v, Valid: true} }

func (f Field) Get() (int, bool) { return f.Value, f.Valid }

func (f Field) Or(def int) int {
	if !f.Valid {
		return def
	}
	return f.Value
}

func (f Field) String() string {
	if !f.Valid {
		return "--"
	}
	return Pad(f.Value)
}

// Time is an hour/minute/second triple where each unit may be unset.
type Time struct {
	Hour   Field
	Minute Field
	Second Field
}

func NewTime(hour, minute, second int) Time {
	return Time{Hour: Of(hour), Minute: Of(minute), Second: Of(second)}
}

func (t Time) Field(mode SelectMode) Field {
	switch mode {
	case SelectHour:
		return t.Hour
	case SelectMinute:
		return t.Minute
	case SelectSecond:
		return t.Second
	}
	return Unset()
}

func (t Time) With(mode SelectMode, f Field) Time {
	switch mode {
	case SelectHour:
		t.Hour = f
	case SelectMinute:
		t.Minute = f
	case SelectSecond:
		t.Second = f
	}
	return t
}

func (t Time) IsZero() bool {
	return !t.Hour.Valid && !t.Minute.Valid && !t.Second.Valid
}

// Complete reports whether every unit needed for a value is set.
func (t Time) Complete(useSeconds bool) bool {
	if !t.Hour.Valid || !t.Minute.Valid {
		return false
	}
	return !useSeconds || t.Second.Valid
}

// SameAs compares the units relevant to the given precision.
func (t Time) SameAs(o Time, useSeconds bool) bool {
	if t.Hour != o.Hour || t.Minute != o.Minute {
		return false
	}
	return !useSeconds || t.Second == o.Second
}

type SelectMode int

const (
	SelectHour SelectMode = iota + 1
	SelectMinute
	SelectSecond
)

func (m SelectMode) String() string {
	switch m {
	case SelectHour:
		return "hour"
	case SelectMinute:
		return "minute"
	case SelectSecond:
		return "second"
	}
	return "unknown"
}

// Next advances hour -> minute -> second and stays on the last unit.
func (m SelectMode) Next(useSeconds bool) SelectMode {
	switch {
	case m == SelectHour:
		return SelectMinute
	case m == SelectMinute && useSeconds:
		return SelectSecond
	}
	return m
}

func (m SelectMode) Prev() SelectMode {
	if m > SelectHour {
		return m - 1
	}
	return m
}

func LastMode(useSeconds bool) SelectMode {
	if useSeconds {
		return SelectSecond
	}
	return SelectMinute
}

type Period int

const (
	PeriodAM Period = iota
	PeriodPM
)

func (p Period) String() string {
	if p == PeriodPM {
		return "pm"
	}
	return "am"
}

// PeriodOf is AM for an unset hour or any hour before noon.
func PeriodOf(hour Field) Period {
	if !hour.Valid || hour.Value < 12 {
		return PeriodAM
	}
	return PeriodPM
}

func ParsePeriod(s string) (Period, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "am":
		return PeriodAM, true
	case "pm":
		return PeriodPM, true
	}
	return PeriodAM, false
}

type Format int

const (
	FormatAmPm Format = iota
	Format24h
)

func (f Format) String() string {
	if f == Format24h {
		return "24hr"
	}
	return "ampm"
}

// ParseFormat accepts "ampm" and "24hr"; anything else falls back to ampm.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "24hr", "24h", "24":
		return Format24h
	}
	return FormatAmPm
}
