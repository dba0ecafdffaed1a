package util

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	state_native "github.com/prysmaticlabs/blockrewards/beacon-chain/state/state-native"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/crypto/hash"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
)

// DeterministicValidators returns numValidators active validators with the max effective balance
// and public keys derived from their index.
func DeterministicValidators(numValidators uint64) []*containers.Validator {
	cfg := params.BeaconConfig()
	vals := make([]*containers.Validator, numValidators)
	for i := uint64(0); i < numValidators; i++ {
		pubkey := bytesutil.ToBytes(i, 48)
		vals[i] = &containers.Validator{
			PublicKey:                  pubkey,
			WithdrawalCredentials:      make([]byte, 32),
			EffectiveBalance:           cfg.MaxEffectiveBalance,
			ActivationEligibilityEpoch: 0,
			ActivationEpoch:            0,
			ExitEpoch:                  cfg.FarFutureEpoch,
			WithdrawableEpoch:          cfg.FarFutureEpoch,
		}
	}
	return vals
}

// DeterministicBlockRoot is the block root the generated states record for slot.
func DeterministicBlockRoot(slot primitives.Slot) []byte {
	r := hash.Hash(bytesutil.Bytes8(uint64(slot)))
	return r[:]
}

// NewBeaconStateData creates raw state data at the given slot with numValidators deterministic
// validators, distinct block roots, zeroed randao mixes and empty participation.
func NewBeaconStateData(numValidators uint64, slot primitives.Slot) *containers.BeaconStateData {
	cfg := params.BeaconConfig()
	blockRoots := make([][]byte, cfg.SlotsPerHistoricalRoot)
	for i := range blockRoots {
		blockRoots[i] = make([]byte, 32)
	}
	// Fill in the roots of the most recent slots, oldest first so that newer slots win on wrap around.
	start := primitives.Slot(0)
	if slot > cfg.SlotsPerHistoricalRoot {
		start = slot - cfg.SlotsPerHistoricalRoot
	}
	for s := start; s < slot; s++ {
		blockRoots[s%cfg.SlotsPerHistoricalRoot] = DeterministicBlockRoot(s)
	}
	randaoMixes := make([][]byte, cfg.EpochsPerHistoricalVector)
	for i := range randaoMixes {
		randaoMixes[i] = make([]byte, 32)
	}
	return &containers.BeaconStateData{
		Slot:                        slot,
		GenesisValidatorsRoot:       make([]byte, 32),
		Validators:                  DeterministicValidators(numValidators),
		BlockRoots:                  blockRoots,
		RandaoMixes:                 randaoMixes,
		PreviousEpochParticipation:  make([]byte, numValidators),
		CurrentEpochParticipation:   make([]byte, numValidators),
		PreviousJustifiedCheckpoint: &containers.Checkpoint{Root: make([]byte, 32)},
		CurrentJustifiedCheckpoint:  &containers.Checkpoint{Root: make([]byte, 32)},
	}
}

// NewBeaconState initializes a read-only beacon state from data, failing the test on error.
func NewBeaconState(t testing.TB, data *containers.BeaconStateData) state.ReadOnlyBeaconState {
	st, err := state_native.InitializeFromData(data)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

// DeterministicGenesisStateAltair returns a state at slot 0 holding numValidators deterministic validators.
func DeterministicGenesisStateAltair(t testing.TB, numValidators uint64) state.ReadOnlyBeaconState {
	return NewBeaconState(t, NewBeaconStateData(numValidators, 0))
}

// SetupForkConfig installs the minimal preset with every fork up to and including the fork
// at index forkVersion activated at genesis. The previous config is restored and the committee
// cache cleared on test cleanup.
func SetupForkConfig(t testing.TB, forkVersion int) *params.BeaconChainConfig {
	params.SetupTestConfigCleanup(t)
	helpers.ClearCache()
	t.Cleanup(helpers.ClearCache)
	cfg := params.MinimalSpecConfig()
	epochs := []*primitives.Epoch{&cfg.AltairForkEpoch, &cfg.BellatrixForkEpoch, &cfg.CapellaForkEpoch, &cfg.DenebForkEpoch}
	for i, e := range epochs {
		if i+1 <= forkVersion {
			*e = 0
		} else {
			*e = cfg.FarFutureEpoch
		}
	}
	params.OverrideBeaconConfig(cfg)
	return cfg
}
