package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='history'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.NoError(t, db.Ping())
}
