package core

import "testing"

func TestParseRGBA(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"255, 128, 0, 0.5", RGBA{255, 128, 0, 0.5}},
		{"10,20,30", RGBA{10, 20, 30, 1}},
		{"300,-4,12.9,2", RGBA{255, 0, 12, 1}},
		{"#f80", RGBA{255, 136, 0, 1}},
		{"#0A141E", RGBA{10, 20, 30, 1}},
		{"rgba(255, 136, 0, 0.46)", RGBA{255, 136, 0, 0.46}},
		{"RGB(1, 2, 3)", RGBA{1, 2, 3, 1}},
	}
	for _, tc := range cases {
		got, err := ParseRGBA(tc.in)
		if err != nil {
			t.Fatalf("ParseRGBA(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseRGBA(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "1,2", "1,2,3,4,5", "1,x,3", "#zzz"} {
		if _, err := ParseRGBA(bad); err == nil {
			t.Errorf("ParseRGBA(%q) accepted", bad)
		}
	}
}

func TestRGBAText(t *testing.T) {
	c := RGBA{255, 136, 0, 0.456}
	if got := c.String(); got != "rgba(255, 136, 0, 0.46)" {
		t.Fatalf("String = %q", got)
	}
	if got := c.Hex(); got != "#ff8800" {
		t.Fatalf("Hex = %q", got)
	}
	if got := c.ChannelText(ChannelG); got != "136" {
		t.Fatalf("green = %q", got)
	}
	if got := (RGBA{A: 1}).ChannelText(ChannelA); got != "1" {
		t.Fatalf("alpha = %q", got)
	}
}

func TestRGBAInputUpdate(t *testing.T) {
	in := NewRGBAInput(RGBA{10, 20, 30, 1})

	if got, changed := in.Update(ChannelR, "300"); !changed || got.R != 255 {
		t.Fatalf("clamped red = %+v, %v", got, changed)
	}
	if got, changed := in.Update(ChannelG, ""); !changed || got.G != 0 {
		t.Fatalf("empty green = %+v, %v", got, changed)
	}
	if _, changed := in.Update(ChannelA, "abc"); changed {
		t.Fatalf("unreadable alpha changed the row")
	}
	if _, changed := in.Update(ChannelB, "30"); changed {
		t.Fatalf("same value reported a change")
	}
	if got, changed := in.Update(ChannelA, "0.25"); !changed || got.A != 0.25 {
		t.Fatalf("alpha = %+v, %v", got, changed)
	}
	if _, changed := in.Update(Channel(7), "1"); changed {
		t.Fatalf("unknown channel changed the row")
	}

	want := RGBA{255, 0, 30, 0.25}
	if in.Value() != want {
		t.Fatalf("value = %+v, want %+v", in.Value(), want)
	}
	if e := in.Event(); e.Kind != EventColorChanged || e.Text != "rgba(255, 0, 30, 0.25)" {
		t.Fatalf("event = %+v", e)
	}
	if in.SetValue(want) {
		t.Fatalf("setting the same colour reported a change")
	}
}
