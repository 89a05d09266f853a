package core

import (
	"slices"
	"strconv"
	"strings"
)

// AllowFunc reports whether a candidate unit value may be selected.
type AllowFunc func(v int) bool

func AllowValues(values ...int) AllowFunc {
	set := slices.Clone(values)
	return func(v int) bool { return slices.Contains(set, v) }
}

// AllowStep allows multiples of n. n <= 1 allows everything.
func AllowStep(n int) AllowFunc {
	if n <= 1 {
		return nil
	}
	return func(v int) bool { return v%n == 0 }
}

// Bound is an inclusive time-of-day limit.
type Bound struct {
	Hour   int
	Minute int
	Second int
}

var (
	lowestBound  = Bound{0, 0, 0}
	highestBound = Bound{23, 59, 59}
)

// ParseBound reads H:M or H:M:S. Missing seconds are 0.
func ParseBound(s string) (Bound, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Bound{}, false
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Bound{}, false
		}
		nums[i] = n
	}
	b := Bound{Hour: nums[0], Minute: nums[1], Second: nums[2]}
	if b.Hour > 23 || b.Minute > 59 || b.Second > 59 {
		return Bound{}, false
	}
	return b, true
}

func (b Bound) minutes() int { return b.Hour*60 + b.Minute }
func (b Bound) seconds() int { return b.Hour*3600 + b.Minute*60 + b.Second }

func (b Bound) String() string {
	return Pad(b.Hour) + ":" + Pad(b.Minute) + ":" + Pad(b.Second)
}

// Rules is the caller supplied configuration for allowed values. Nil
// predicates allow every value; empty Min/Max leave the day unbounded.
type Rules struct {
	Hours   AllowFunc
	Minutes AllowFunc
	Seconds AllowFunc
	Min     string
	Max     string
}

type chainLink struct {
	mode  SelectMode
	check func(t Time, v int) bool
}

// Chain validates units in order: hour, then minute, then second. A unit
// only passes when every earlier unit already set on the time passes too.
type Chain struct {
	links   []chainLink
	min     Bound
	max     Bound
	bounded bool
}

func NewChain(r Rules) Chain {
	c := Chain{min: lowestBound, max: highestBound}
	if b, ok := ParseBound(r.Min); ok {
		c.min, c.bounded = b, true
	}
	if b, ok := ParseBound(r.Max); ok {
		c.max, c.bounded = b, true
	}
	c.links = []chainLink{
		{mode: SelectHour, check: func(_ Time, v int) bool {
			if v < 0 || v > 23 {
				return false
			}
			if c.bounded && (v < c.min.Hour || v > c.max.Hour) {
				return false
			}
			return r.Hours == nil || r.Hours(v)
		}},
		{mode: SelectMinute, check: func(t Time, v int) bool {
			if v < 0 || v > 59 {
				return false
			}
			if c.bounded && t.Hour.Valid {
				m := t.Hour.Value*60 + v
				if m < c.min.minutes() || m > c.max.minutes() {
					return false
				}
			}
			return r.Minutes == nil || r.Minutes(v)
		}},
		{mode: SelectSecond, check: func(t Time, v int) bool {
			if v < 0 || v > 59 {
				return false
			}
			if c.bounded && t.Hour.Valid && t.Minute.Valid {
				s := t.Hour.Value*3600 + t.Minute.Value*60 + v
				if s < c.min.seconds() || s > c.max.seconds() {
					return false
				}
			}
			return r.Seconds == nil || r.Seconds(v)
		}},
	}
	return c
}

func (c Chain) Bounds() (Bound, Bound, bool) {
	return c.min, c.max, c.bounded
}

// Allowed reports whether v may be chosen for mode given the other units
// already on t.
func (c Chain) Allowed(mode SelectMode, t Time, v int) bool {
	for _, link := range c.links {
		if link.mode == mode {
			return link.check(t, v)
		}
		if cur, ok := t.Field(link.mode).Get(); ok && !link.check(t, cur) {
			return false
		}
	}
	return len(c.links) == 0
}

// For binds the chain to t.
func (c Chain) For(t Time) UnitRules {
	return UnitRules{
		Hour:   func(v int) bool { return c.Allowed(SelectHour, t, v) },
		Minute: func(v int) bool { return c.Allowed(SelectMinute, t, v) },
		Second: func(v int) bool { return c.Allowed(SelectSecond, t, v) },
	}
}

// UnitRules holds one predicate per unit. Nil predicates allow everything.
type UnitRules struct {
	Hour   AllowFunc
	Minute AllowFunc
	Second AllowFunc
}

func (u UnitRules) Allowed(mode SelectMode, v int) bool {
	var fn AllowFunc
	switch mode {
	case SelectHour:
		fn = u.Hour
	case SelectMinute:
		fn = u.Minute
	case SelectSecond:
		fn = u.Second
	}
	return fn == nil || fn(v)
}

// FirstAllowed scans forward from value, wrapping inside the unit's range,
// and returns the first allowed value. Hours stay within their half of the
// day in am/pm format. When nothing is allowed value is returned unchanged.
func (c Chain) FirstAllowed(mode SelectMode, t Time, value int, ampm bool) int {
	lo, n := 0, 60
	if mode == SelectHour {
		lo, n = 0, 24
		if ampm {
			n = 12
			if value >= 12 {
				lo = 12
			}
		}
	}
	for i := 0; i < n; i++ {
		cand := lo + ((value-lo+i)%n+n)%n
		if c.Allowed(mode, t, cand) {
			return cand
		}
	}
	return value
}
