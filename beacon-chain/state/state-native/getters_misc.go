package state_native

import (
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/network/forks"
)

// Slot of the current beacon chain state.
func (b *BeaconState) Slot() primitives.Slot {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.slot
}

// GenesisValidatorsRoot of the beacon state.
func (b *BeaconState) GenesisValidatorsRoot() []byte {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return copyBytes(b.genesisValidatorsRoot)
}

// SyncProposerReward is the reward the block proposer receives for every
// participating bit of the sync aggregate it includes.
func (b *BeaconState) SyncProposerReward() uint64 {
	return b.syncProposerReward
}

// ForkSchedule the state was initialized with.
func (b *BeaconState) ForkSchedule() *forks.Schedule {
	return b.forkSchedule
}
