package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type RGBA struct {
	R, G, B uint8
	A       float64
}

type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

var Channels = []Channel{ChannelR, ChannelG, ChannelB, ChannelA}

func (c Channel) Label() string {
	return [...]string{"R", "G", "B", "A"}[c]
}

func (c RGBA) Channel(ch Channel) float64 {
	switch ch {
	case ChannelR:
		return float64(c.R)
	case ChannelG:
		return float64(c.G)
	case ChannelB:
		return float64(c.B)
	}
	return c.A
}

// ChannelText renders a channel the way the input row shows it: integers
// for colour channels, a short decimal for alpha.
func (c RGBA) ChannelText(ch Channel) string {
	if ch == ChannelA {
		return strconv.FormatFloat(math.Round(c.A*100)/100, 'f', -1, 64)
	}
	return strconv.Itoa(int(c.Channel(ch)))
}

func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex drops alpha.
func (c RGBA) Hex() string {
	return c.Colorful().Hex()
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, c.ChannelText(ChannelA))
}

// ParseHex reads #rrggbb or #rgb with full alpha.
func ParseHex(s string) (RGBA, error) {
	col, err := colorful.Hex(normaliseHex(s))
	if err != nil {
		return RGBA{}, fmt.Errorf("parse hex %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}, nil
}

func normaliseHex(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return "#" + strings.ToLower(s)
}

// ParseRGBA reads "r,g,b[,a]", the same wrapped in rgb() or rgba(), or a hex
// colour. Alpha defaults to 1.
func ParseRGBA(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	body := strings.ToLower(s)
	for _, fn := range []string{"rgba(", "rgb("} {
		if strings.HasPrefix(body, fn) && strings.HasSuffix(body, ")") {
			body = body[len(fn) : len(body)-1]
			break
		}
	}
	parts := strings.Split(body, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return RGBA{}, fmt.Errorf("parse rgba %q: want 3 or 4 components", s)
	}
	c := RGBA{A: 1}
	for i, part := range parts {
		v, ok := parseChannel(Channel(i), part)
		if !ok {
			return RGBA{}, fmt.Errorf("parse rgba %q: bad component %q", s, part)
		}
		c = c.WithChannel(Channel(i), v)
	}
	return c, nil
}

// WithChannel sets one channel. v must already be in range.
func (c RGBA) WithChannel(ch Channel, v float64) RGBA {
	switch ch {
	case ChannelR:
		c.R = uint8(v)
	case ChannelG:
		c.G = uint8(v)
	case ChannelB:
		c.B = uint8(v)
	case ChannelA:
		c.A = v
	}
	return c
}

// parseChannel reads one field. An empty field reads as zero and values are
// clamped to the channel range.
func parseChannel(ch Channel, text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	if ch == ChannelA {
		return math.Max(0, math.Min(1, f)), true
	}
	return math.Max(0, math.Min(255, math.Trunc(f))), true
}

// RGBAInput is the four-field editing row for a colour.
type RGBAInput struct {
	value RGBA
}

func NewRGBAInput(v RGBA) *RGBAInput {
	return &RGBAInput{value: v}
}

func (in *RGBAInput) Value() RGBA { return in.value }

// SetValue replaces the row from the host, ignoring no-op updates.
func (in *RGBAInput) SetValue(v RGBA) bool {
	if v == in.value {
		return false
	}
	in.value = v
	return true
}

// Update applies text typed into one field and reports the resulting colour
// and whether the row changed. Unreadable text is ignored.
func (in *RGBAInput) Update(ch Channel, text string) (RGBA, bool) {
	if ch < ChannelR || ch > ChannelA {
		return in.value, false
	}
	v, ok := parseChannel(ch, text)
	if !ok {
		return in.value, false
	}
	next := in.value.WithChannel(ch, v)
	return next, in.SetValue(next)
}

func (in *RGBAInput) Event() Event {
	return Event{Kind: EventColorChanged, Text: in.value.String()}
}
