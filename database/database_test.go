package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDatabase opens a file-backed sqlite database in a temporary
// directory and migrates the full schema.
func newTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return New(db)
}
