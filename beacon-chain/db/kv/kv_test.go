package kv

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

// setupDB instantiates and returns a Store instance.
func setupDB(t testing.TB) *Store {
	db, err := NewKVStore(context.Background(), t.TempDir())
	require.NoError(t, err, "Failed to instantiate DB")
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close database")
	})
	return db
}

func TestNewKVStore_CreatesDirectory(t *testing.T) {
	dir := path.Join(t.TempDir(), "nested", "dir")
	db, err := NewKVStore(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, db.DatabasePath())
	_, err = os.Stat(path.Join(dir, DatabaseFileName))
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestStore_ClearDB(t *testing.T) {
	dir := t.TempDir()
	db, err := NewKVStore(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.NoError(t, db.ClearDB())
	_, err = os.Stat(path.Join(dir, DatabaseFileName))
	assert.Equal(t, true, os.IsNotExist(err))
}
