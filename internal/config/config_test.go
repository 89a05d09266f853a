package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CLOCKFACE_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ampm", c.Picker.Format)
	require.True(t, c.Picker.Scrollable)
	require.False(t, c.Picker.UseSeconds)
	require.Equal(t, 290.0, c.Picker.Size)
	require.Equal(t, 1, c.Picker.MinuteStep)
	require.Equal(t, filepath.Join(home, ".local", "share", "clockface", "history.db"), c.Database.Path)
	require.Equal(t, filepath.Join(home, ".config", "clockface"), c.Prefs.Dir)
	require.Empty(t, c.Log.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[picker]
format = "24hr"
use_seconds = true
min = "09:00"
max = "17:30"
minute_step = 15

[keys]
quit = ["ctrl+q"]
`), 0o600))
	t.Setenv("CLOCKFACE_CONFIG", path)
	t.Setenv("CLOCKFACE_PICKER_MAX", "18:00")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "24hr", c.Picker.Format)
	require.True(t, c.Picker.UseSeconds)
	require.Equal(t, "09:00", c.Picker.Min)
	require.Equal(t, "18:00", c.Picker.Max)
	require.Equal(t, 15, c.Picker.MinuteStep)
	require.Equal(t, []string{"ctrl+q"}, c.Keys["quit"])
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[picker\nformat = "), 0o600))
	t.Setenv("CLOCKFACE_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	home := isolate(t)

	c, err := Load()
	require.NoError(t, err)
	c.Picker.Format = "24hr"
	c.Picker.Rotate = 90
	c.Log.File = filepath.Join(home, "clockface.log")
	c.Keys = map[string][]string{"open-history": {"ctrl+h"}}
	require.NoError(t, Save(c))
	require.FileExists(t, filepath.Join(home, ".config", "clockface", "config.toml"))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "24hr", got.Picker.Format)
	require.Equal(t, 90.0, got.Picker.Rotate)
	require.Equal(t, c.Log.File, got.Log.File)
	require.Equal(t, []string{"ctrl+h"}, got.Keys["open-history"])
}

func TestLoadRejectsFixedKeyRemap(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keys]\nstep = [\"w\", \"s\"]\n"), 0o600))
	t.Setenv("CLOCKFACE_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "cannot be remapped")
}
