package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMigrations(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+migrationTable).Scan(&n))
	return n
}

func TestOpen_AppliesEmbeddedSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "backoffice.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"products", "customers", "orders"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
	}
	assert.Equal(t, 1, countMigrations(t, db))
}

func TestApplyMigrations_SkipsAlreadyApplied(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	files := fstest.MapFS{
		"001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id INTEGER PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
	}
	require.NoError(t, ApplyMigrations(ctx, db, files))
	require.NoError(t, ApplyMigrations(ctx, db, files))
	assert.Equal(t, 1, countMigrations(t, db))
}

func TestApplyMigrations_FailedFileStaysUnrecorded(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")},
	}
	require.Error(t, ApplyMigrations(ctx, db, bad))
	assert.Equal(t, 0, countMigrations(t, db))
}

func TestExtractUp(t *testing.T) {
	assert.Equal(t, "\nA;\n", extractUp("-- +migrate Up\nA;\n-- +migrate Down\nB;"))
	assert.Equal(t, "plain", extractUp("plain"))
}
