package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaletteRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prefs")

	p, err := LoadPalette(dir)
	require.NoError(t, err)
	require.Empty(t, p.Swatches)
	require.NoDirExists(t, dir)

	want := Palette{Swatches: []string{"rgba(255, 136, 0, 1)", "rgba(0, 0, 0, 0.5)"}}
	require.NoError(t, SavePalette(dir, want))
	require.NoFileExists(t, filepath.Join(dir, paletteFile+".tmp"))

	got, err := LoadPalette(dir)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadPaletteRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, paletteFile), []byte("{"), 0o600))

	_, err := LoadPalette(dir)
	require.Error(t, err)
}
