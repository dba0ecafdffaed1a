package helpers_test

import (
	"fmt"
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/prysmaticlabs/blockrewards/testing/util"
)

func TestBlockRootAtSlot_CorrectBlockRoot(t *testing.T) {
	util.SetupForkConfig(t, version.Altair)
	tests := []struct {
		slot      primitives.Slot
		stateSlot primitives.Slot
		errString string
	}{
		{slot: 0, stateSlot: 1},
		{slot: 5, stateSlot: 10},
		{slot: 36, stateSlot: 100},
		{slot: 63, stateSlot: 64},
		{slot: 10, stateSlot: 10, errString: "slot 10 out of bounds"},
		{slot: 20, stateSlot: 10, errString: "slot 20 out of bounds"},
		{slot: 35, stateSlot: 100, errString: "slot 35 out of bounds"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("slot_%d_state_%d", tt.slot, tt.stateSlot), func(t *testing.T) {
			st := util.NewBeaconState(t, util.NewBeaconStateData(1, tt.stateSlot))
			root, err := helpers.BlockRootAtSlot(st, tt.slot)
			if tt.errString != "" {
				assert.ErrorContains(t, tt.errString, err)
				return
			}
			require.NoError(t, err)
			assert.DeepEqual(t, util.DeterministicBlockRoot(tt.slot), root)
		})
	}
}

func TestBlockRoot_EpochStart(t *testing.T) {
	cfg := util.SetupForkConfig(t, version.Altair)
	st := util.NewBeaconState(t, util.NewBeaconStateData(1, 2*cfg.SlotsPerEpoch+1))
	root, err := helpers.BlockRoot(st, 2)
	require.NoError(t, err)
	assert.DeepEqual(t, util.DeterministicBlockRoot(2*cfg.SlotsPerEpoch), root)

	_, err = helpers.BlockRoot(st, 3)
	assert.ErrorContains(t, "out of bounds", err)
}

func TestSeed_DiffersPerEpoch(t *testing.T) {
	cfg := util.SetupForkConfig(t, version.Altair)
	st := util.NewBeaconState(t, util.NewBeaconStateData(1, 0))
	s0, err := helpers.Seed(st, 0, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	s0Again, err := helpers.Seed(st, 0, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	s1, err := helpers.Seed(st, 1, cfg.DomainBeaconAttester)
	require.NoError(t, err)
	assert.Equal(t, s0, s0Again)
	assert.NotEqual(t, s0, s1)
}

func TestEpochHelpers(t *testing.T) {
	cfg := util.SetupForkConfig(t, version.Altair)
	st := util.NewBeaconState(t, util.NewBeaconStateData(1, 0))
	assert.Equal(t, primitives.Epoch(0), helpers.CurrentEpoch(st))
	assert.Equal(t, primitives.Epoch(0), helpers.PrevEpoch(st))

	st = util.NewBeaconState(t, util.NewBeaconStateData(1, 3*cfg.SlotsPerEpoch+2))
	assert.Equal(t, primitives.Epoch(3), helpers.CurrentEpoch(st))
	assert.Equal(t, primitives.Epoch(2), helpers.PrevEpoch(st))
}
