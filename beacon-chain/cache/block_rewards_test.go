package cache

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestBlockRewardsCache_PutGet(t *testing.T) {
	c, err := NewBlockRewardsCache()
	require.NoError(t, err)

	root := [32]byte{'a'}
	_, err = c.Get(root)
	require.ErrorIs(t, err, ErrNotFound)

	want := &structs.BlockRewards{ProposerIndex: "5", Total: "30", Attestations: "10", SyncAggregate: "20", ProposerSlashings: "0", AttesterSlashings: "0"}
	c.Put(root, want)
	got, err := c.Get(root)
	require.NoError(t, err)
	assert.DeepEqual(t, want, got)

	// Entries are copies of the stored value.
	got.Total = "0"
	again, err := c.Get(root)
	require.NoError(t, err)
	assert.Equal(t, "30", again.Total)
	want.Total = "1"
	again, err = c.Get(root)
	require.NoError(t, err)
	assert.Equal(t, "30", again.Total)
}

func TestBlockRewardsCache_Evicts(t *testing.T) {
	c, err := NewBlockRewardsCache()
	require.NoError(t, err)

	for i := 0; i < maxBlockRewardsCacheSize+10; i++ {
		c.Put(bytesutil.ToBytes32([]byte{byte(i), byte(i >> 8)}), &structs.BlockRewards{})
	}
	assert.Equal(t, maxBlockRewardsCacheSize, c.Len())
	_, err = c.Get(bytesutil.ToBytes32([]byte{0, 0}))
	assert.ErrorIs(t, err, ErrNotFound)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestBlockRewardsCache_NilIgnored(t *testing.T) {
	c, err := NewBlockRewardsCache()
	require.NoError(t, err)
	c.Put([32]byte{}, nil)
	assert.Equal(t, 0, c.Len())
}
