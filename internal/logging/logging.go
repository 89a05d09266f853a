package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New returns a JSON logger appending to path. The terminal belongs to the
// TUI, so an empty path discards everything. The returned close func is
// never nil.
func New(path, level string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), noop, nil
	}
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, noop, fmt.Errorf("log level %q: %w", level, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("app", "clockface"), f.Close, nil
}
