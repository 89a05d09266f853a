package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/clockface/core"
)

const sample = `
[[preset]]
name = "lunch"
description = "lunch break"
min = "11:30"
max = "14:00"
minute_step = 15

[[preset]]
name = "mornings"
hours = [6, 7, 8, 9]
minutes = [0, 10, 20, 30, 40, 50]
minute_step = 20
format = "24hr"
use_seconds = true
`

func TestParse(t *testing.T) {
	list, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, list, 2)

	lunch, ok := Find(list, "LUNCH")
	require.True(t, ok)
	chain := core.NewChain(lunch.Rules())
	require.False(t, chain.Allowed(core.SelectHour, core.Time{}, 15))
	require.True(t, chain.Allowed(core.SelectHour, core.Time{}, 12))
	require.False(t, chain.Allowed(core.SelectMinute, core.NewTime(12, 0, 0), 10))
	require.True(t, chain.Allowed(core.SelectMinute, core.NewTime(12, 0, 0), 45))

	mornings, ok := Find(list, "mornings")
	require.True(t, ok)
	require.Equal(t, "24hr", mornings.Format)
	require.True(t, mornings.UseSeconds)
	rules := mornings.Rules()
	require.True(t, rules.Hours(7))
	require.False(t, rules.Hours(10))
	// Listed and a multiple of 20.
	require.True(t, rules.Minutes(40))
	require.False(t, rules.Minutes(30))
	require.Nil(t, rules.Seconds)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"no name":    "[[preset]]\nmin = \"09:00\"\n",
		"duplicate":  "[[preset]]\nname = \"a\"\n[[preset]]\nname = \"a\"\n",
		"bad bound":  "[[preset]]\nname = \"a\"\nmax = \"25:00\"\n",
		"bad hour":   "[[preset]]\nname = \"a\"\nhours = [24]\n",
		"bad step":   "[[preset]]\nname = \"a\"\nminute_step = 45\n",
		"bad syntax": "[[preset]\nname = ",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	list, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), list)

	path := filepath.Join(dir, "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	list, err = Load(path)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
