package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestStore_Backup(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	root := [32]byte{'h'}
	blk := blockAtSlot(5000, 2)
	require.NoError(t, db.SaveBlock(ctx, root, blk))
	require.NoError(t, db.SaveFinalizedSlot(ctx, 4000))

	require.NoError(t, db.Backup(ctx, "", false))
	backupsPath := filepath.Join(db.databasePath, backupsDirectoryName)
	files, err := os.ReadDir(backupsPath)
	require.NoError(t, err)
	require.Equal(t, 1, len(files))
	assert.Equal(t, "blockrewards_at_slot_0005000.backup", files[0].Name())

	// Open the backup as a regular store and read the data back.
	require.NoError(t, os.Rename(filepath.Join(backupsPath, files[0].Name()), filepath.Join(backupsPath, DatabaseFileName)))
	backup, err := NewKVStore(ctx, backupsPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, backup.Close())
	})
	got, err := backup.Block(ctx, root)
	require.NoError(t, err)
	assert.DeepEqual(t, blk, got)
	slot, err := backup.FinalizedSlot(ctx)
	require.NoError(t, err)
	assert.Equal(t, blk.Block.Slot-1000, slot)
}

func TestStore_Backup_EmptyDBAndPermissions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	out := filepath.Join(t.TempDir(), "open")
	require.NoError(t, os.MkdirAll(out, 0755))
	require.NoError(t, os.Chmod(out, 0755))
	err := db.Backup(ctx, out, false)
	assert.ErrorContains(t, "already exists with permissions", err)

	require.NoError(t, db.Backup(ctx, out, true))
	_, err = os.Stat(filepath.Join(out, "blockrewards_at_slot_0000000.backup"))
	require.NoError(t, err)
}
