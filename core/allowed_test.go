package core

import "testing"

func TestChainMinMax(t *testing.T) {
	c := NewChain(Rules{Min: "09:00", Max: "17:30"})

	cases := []struct {
		name string
		mode SelectMode
		at   Time
		v    int
		want bool
	}{
		{"hour before min", SelectHour, Time{}, 8, false},
		{"hour after max", SelectHour, Time{}, 18, false},
		{"first hour", SelectHour, Time{}, 9, true},
		{"min minute", SelectMinute, Time{Hour: Of(9)}, 0, true},
		{"past max minute", SelectMinute, Time{Hour: Of(17)}, 31, false},
		{"max minute", SelectMinute, Time{Hour: Of(17)}, 30, true},
		{"inside max hour", SelectMinute, Time{Hour: Of(17)}, 29, true},
		{"minute with hour unset", SelectMinute, Time{}, 45, true},
		{"minute under disallowed hour", SelectMinute, Time{Hour: Of(8)}, 0, false},
	}
	for _, tc := range cases {
		if got := c.Allowed(tc.mode, tc.at, tc.v); got != tc.want {
			t.Errorf("%s: Allowed(%s, %d) = %v, want %v", tc.name, tc.mode, tc.v, got, tc.want)
		}
	}
}

func TestChainSecondBound(t *testing.T) {
	c := NewChain(Rules{Min: "09:00:30"})
	at := Time{Hour: Of(9), Minute: Of(0)}
	if c.Allowed(SelectSecond, at, 10) {
		t.Fatalf("expected 09:00:10 to fall before the minimum")
	}
	if !c.Allowed(SelectSecond, at, 30) {
		t.Fatalf("expected 09:00:30 to be allowed")
	}
	if !c.Allowed(SelectSecond, Time{Hour: Of(9)}, 10) {
		t.Fatalf("expected seconds to skip the bound while the minute is unset")
	}
}

func TestChainPredicates(t *testing.T) {
	c := NewChain(Rules{
		Hours:   AllowValues(9, 10, 11),
		Minutes: AllowStep(15),
		Seconds: func(v int) bool { return v < 10 },
	})
	if c.Allowed(SelectHour, Time{}, 12) || !c.Allowed(SelectHour, Time{}, 10) {
		t.Fatalf("hour predicate not applied")
	}
	if c.Allowed(SelectMinute, Time{Hour: Of(10)}, 20) || !c.Allowed(SelectMinute, Time{Hour: Of(10)}, 45) {
		t.Fatalf("minute step not applied")
	}
	if c.Allowed(SelectSecond, NewTime(10, 15, 0), 10) {
		t.Fatalf("second predicate not applied")
	}
	if c.Allowed(SelectSecond, NewTime(10, 20, 0), 5) {
		t.Fatalf("expected a disallowed minute to block seconds")
	}
	if c.Allowed(SelectMinute, Time{}, 60) || c.Allowed(SelectHour, Time{}, -1) {
		t.Fatalf("expected out of range values to be rejected")
	}
}

func TestUnitRulesFor(t *testing.T) {
	c := NewChain(Rules{Min: "09:00", Max: "17:30"})
	r := c.For(Time{Hour: Of(17)})
	if r.Allowed(SelectMinute, 45) {
		t.Fatalf("bound rules should reject 17:45")
	}
	if !r.Allowed(SelectMinute, 15) {
		t.Fatalf("bound rules should allow 17:15")
	}
	if !(UnitRules{}).Allowed(SelectHour, 3) {
		t.Fatalf("empty rules allow everything")
	}
}

func TestFirstAllowed(t *testing.T) {
	c := NewChain(Rules{Hours: AllowValues(9, 10, 11, 14, 15)})
	if got := c.FirstAllowed(SelectHour, Time{}, 22, true); got != 14 {
		t.Fatalf("FirstAllowed pm = %d, want 14", got)
	}
	if got := c.FirstAllowed(SelectHour, Time{}, 3, true); got != 9 {
		t.Fatalf("FirstAllowed am = %d, want 9", got)
	}
	if got := c.FirstAllowed(SelectHour, Time{}, 16, false); got != 9 {
		t.Fatalf("FirstAllowed 24h = %d, want 9 after wrapping", got)
	}

	none := NewChain(Rules{Minutes: func(int) bool { return false }})
	if got := none.FirstAllowed(SelectMinute, Time{}, 42, false); got != 42 {
		t.Fatalf("FirstAllowed with nothing allowed = %d, want 42", got)
	}
}

func TestParseBound(t *testing.T) {
	if b, ok := ParseBound("9:05"); !ok || b != (Bound{9, 5, 0}) {
		t.Fatalf("ParseBound(9:05) = %+v, %v", b, ok)
	}
	if b, ok := ParseBound("23:59:59"); !ok || b.String() != "23:59:59" {
		t.Fatalf("ParseBound(23:59:59) = %+v, %v", b, ok)
	}
	for _, bad := range []string{"", "9", "25:00", "10:61", "a:b", "1:2:3:4", "-1:00"} {
		if _, ok := ParseBound(bad); ok {
			t.Errorf("ParseBound(%q) accepted", bad)
		}
	}
}

func TestUnboundedChain(t *testing.T) {
	c := NewChain(Rules{Min: "garbage"})
	if _, _, bounded := c.Bounds(); bounded {
		t.Fatalf("unreadable min should leave the chain unbounded")
	}
	if !c.Allowed(SelectHour, Time{}, 0) || !c.Allowed(SelectHour, Time{}, 23) {
		t.Fatalf("unbounded chain should allow every hour")
	}
}
