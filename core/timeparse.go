package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`^(\d+):(\d+)(?::(\d+))?([ap]m)?$`)

// Layouts tried when the input is not a plain clock string.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTime reads H:M[:S][am|pm] or a date-like string. Anything it cannot
// read, including out of range units, comes back with every unit unset.
func ParseTime(s string) Time {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Time{}
	}
	if m := clockPattern.FindStringSubmatch(s); m != nil {
		return parseClock(m)
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return TimeOf(parsed)
		}
	}
	return Time{}
}

func parseClock(m []string) Time {
	hour, errH := strconv.Atoi(m[1])
	minute, errM := strconv.Atoi(m[2])
	if errH != nil || errM != nil {
		return Time{}
	}
	second := 0
	if m[3] != "" {
		var err error
		if second, err = strconv.Atoi(m[3]); err != nil {
			return Time{}
		}
	}
	if p, ok := ParsePeriod(m[4]); ok {
		if hour > 12 {
			return Time{}
		}
		hour = Convert12to24(hour, p)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return Time{}
	}
	return NewTime(hour, minute, second)
}

func TimeOf(t time.Time) Time {
	return NewTime(t.Hour(), t.Minute(), t.Second())
}

// FormatTime renders HH:MM or HH:MM:SS. It returns false while a required
// unit is still unset.
func FormatTime(t Time, useSeconds bool) (string, bool) {
	if !t.Complete(useSeconds) {
		return "", false
	}
	out := Pad(t.Hour.Value) + ":" + Pad(t.Minute.Value)
	if useSeconds {
		out += ":" + Pad(t.Second.Value)
	}
	return out, true
}

func Pad(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Convert24to12 maps 0..23 onto the 12-hour face, with 0 and 12 shown as 12.
func Convert24to12(hour int) int {
	if hour == 0 {
		return 12
	}
	return (hour-1)%12 + 1
}

func Convert12to24(hour int, p Period) int {
	h := hour % 12
	if p == PeriodPM {
		h += 12
	}
	return h
}
