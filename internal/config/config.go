package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/clockface/core"
)

// Config holds application configuration.
type Config struct {
	Picker   PickerConfig
	Database DatabaseConfig
	Prefs    PrefsConfig
	Presets  PresetsConfig
	Log      LogConfig
	// Keys remaps actions to keys, for example quit = ["ctrl+q"].
	Keys map[string][]string
}

// PickerConfig holds the defaults every picker starts from.
type PickerConfig struct {
	Format      string
	UseSeconds  bool `mapstructure:"use_seconds"`
	Scrollable  bool
	AmPmInTitle bool `mapstructure:"ampm_in_title"`
	Rotate      float64
	Size        float64
	Min         string
	Max         string
	MinuteStep  int `mapstructure:"minute_step"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

type PrefsConfig struct {
	Dir string
}

type PresetsConfig struct {
	Path string
}

// LogConfig holds log settings. An empty File disables logging.
type LogConfig struct {
	File  string
	Level string
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "clockface")
}

// Path is the config file Load reads and Save writes.
func Path() string {
	if p := os.Getenv("CLOCKFACE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix CLOCKFACE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("picker.format", "ampm")
	v.SetDefault("picker.use_seconds", false)
	v.SetDefault("picker.scrollable", true)
	v.SetDefault("picker.ampm_in_title", false)
	v.SetDefault("picker.rotate", 0.0)
	v.SetDefault("picker.size", 290.0)
	v.SetDefault("picker.min", "")
	v.SetDefault("picker.max", "")
	v.SetDefault("picker.minute_step", 1)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "clockface", "history.db"))
	v.SetDefault("prefs.dir", configDir())
	v.SetDefault("presets.path", filepath.Join(configDir(), "presets.toml"))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("CLOCKFACE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOCKFACE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := core.CheckActionKeybindings(core.DefaultKeyBindings(), c.Keys); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", Path(), err)
	}
	if c.Picker.MinuteStep < 1 {
		c.Picker.MinuteStep = 1
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("picker.format", cfg.Picker.Format)
	v.Set("picker.use_seconds", cfg.Picker.UseSeconds)
	v.Set("picker.scrollable", cfg.Picker.Scrollable)
	v.Set("picker.ampm_in_title", cfg.Picker.AmPmInTitle)
	v.Set("picker.rotate", cfg.Picker.Rotate)
	v.Set("picker.size", cfg.Picker.Size)
	v.Set("picker.min", cfg.Picker.Min)
	v.Set("picker.max", cfg.Picker.Max)
	v.Set("picker.minute_step", cfg.Picker.MinuteStep)
	v.Set("database.path", cfg.Database.Path)
	v.Set("prefs.dir", cfg.Prefs.Dir)
	v.Set("presets.path", cfg.Presets.Path)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
