package lookup

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/prysmaticlabs/blockrewards/testing/util"
)

func TestStateProvider_PreState(t *testing.T) {
	util.SetupForkConfig(t, version.Altair)
	ctx := context.Background()
	db := setupDB(t)
	root := [32]byte{'r'}
	require.NoError(t, db.SavePreState(ctx, root, util.NewBeaconStateData(32, 12)))

	p := &StateProvider{BeaconDB: db}
	st, err := p.PreState(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(12), st.Slot())
	assert.Equal(t, 32, st.NumValidators())

	_, err = p.PreState(ctx, [32]byte{'m'})
	_, ok := err.(*StateNotFoundError)
	assert.Equal(t, true, ok, "Expected not found error, got %v", err)
}
