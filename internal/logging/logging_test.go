package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clockface.log")
	log, closeLog, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "kind", "time")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "time", rec["kind"])
	require.Equal(t, "clockface", rec["app"])
}

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closeLog, err := New("", "debug")
	require.NoError(t, err)
	require.False(t, log.Enabled(t.Context(), 0))
	require.NoError(t, closeLog())
}

func TestNewRejectsLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "x.log"), "chatty")
	require.Error(t, err)
}
