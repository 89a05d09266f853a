package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const paletteFile = "palette.json"

// Palette is the list of saved colours, newest first.
type Palette struct {
	Swatches []string `json:"swatches"`
}

// Dir is the default prefs directory.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clockface"), nil
}

func palettePath(dir string) (string, error) {
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return filepath.Join(dir, paletteFile), nil
}

// SavePalette writes p under dir, or the default directory when dir is
// empty. The file is replaced atomically.
func SavePalette(dir string, p Palette) error {
	path, err := palettePath(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadPalette reads the palette. A missing file is an empty palette; the
// directory is left untouched.
func LoadPalette(dir string) (Palette, error) {
	path, err := palettePath(dir)
	if err != nil {
		return Palette{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Palette{}, nil
		}
		return Palette{}, err
	}
	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return p, nil
}
