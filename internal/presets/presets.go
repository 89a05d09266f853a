package presets

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/clockface/core"
)

// Preset is a named set of allowed-time rules.
type Preset struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Min         string `toml:"min"`
	Max         string `toml:"max"`
	Hours       []int  `toml:"hours"`
	Minutes     []int  `toml:"minutes"`
	Seconds     []int  `toml:"seconds"`
	MinuteStep  int    `toml:"minute_step"`
	// Format and UseSeconds only apply when a picker starts from the preset.
	Format     string `toml:"format"`
	UseSeconds bool   `toml:"use_seconds"`
}

type presetsFile struct {
	Preset []Preset `toml:"preset"`
}

// Defaults are offered when no presets file exists.
func Defaults() []Preset {
	return []Preset{
		{Name: "any", Description: "every time of day"},
		{Name: "office", Description: "09:00 to 17:30 in quarter hours", Min: "09:00", Max: "17:30", MinuteStep: 15},
		{Name: "quarters", Description: "quarter hours", MinuteStep: 15},
		{Name: "even", Description: "even minutes", MinuteStep: 2},
	}
}

// Parse decodes [[preset]] tables and validates them.
func Parse(data []byte) ([]Preset, error) {
	var f presetsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	seen := map[string]bool{}
	for i, p := range f.Preset {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("preset[%d]: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("preset %q: defined twice", name)
		}
		seen[name] = true
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		f.Preset[i].Name = name
	}
	return f.Preset, nil
}

// Load reads presets from path. A missing file yields Defaults.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Find looks a preset up by name, ignoring case.
func Find(list []Preset, name string) (Preset, bool) {
	for _, p := range list {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}

func (p Preset) validate() error {
	for _, b := range []struct{ key, v string }{{"min", p.Min}, {"max", p.Max}} {
		if b.v == "" {
			continue
		}
		if _, ok := core.ParseBound(b.v); !ok {
			return fmt.Errorf("%s %q is not H:M or H:M:S", b.key, b.v)
		}
	}
	if err := inRange("hours", p.Hours, 23); err != nil {
		return err
	}
	if err := inRange("minutes", p.Minutes, 59); err != nil {
		return err
	}
	if err := inRange("seconds", p.Seconds, 59); err != nil {
		return err
	}
	if p.MinuteStep < 0 || p.MinuteStep > 30 {
		return fmt.Errorf("minute_step %d out of range", p.MinuteStep)
	}
	return nil
}

func inRange(key string, values []int, hi int) error {
	for _, v := range values {
		if v < 0 || v > hi {
			return fmt.Errorf("%s: %d out of range", key, v)
		}
	}
	return nil
}

// Rules builds the picker rules. A minute list and a minute step must both
// pass.
func (p Preset) Rules() core.Rules {
	return core.Rules{
		Hours:   listRule(p.Hours),
		Minutes: both(listRule(p.Minutes), core.AllowStep(p.MinuteStep)),
		Seconds: listRule(p.Seconds),
		Min:     p.Min,
		Max:     p.Max,
	}
}

func listRule(values []int) core.AllowFunc {
	if len(values) == 0 {
		return nil
	}
	return core.AllowValues(values...)
}

func both(a, b core.AllowFunc) core.AllowFunc {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(v int) bool { return a(v) && b(v) }
}
