package state_native

import (
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
)

// CurrentEpochParticipation corresponding to participation bits on the beacon chain.
func (b *BeaconState) CurrentEpochParticipation() ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.currentEpochParticipation == nil {
		return nil, state.ErrNilParticipation
	}
	return copyBytes(b.currentEpochParticipation), nil
}

// PreviousEpochParticipation corresponding to participation bits on the beacon chain.
func (b *BeaconState) PreviousEpochParticipation() ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.previousEpochParticipation == nil {
		return nil, state.ErrNilParticipation
	}
	return copyBytes(b.previousEpochParticipation), nil
}

// PreviousJustifiedCheckpoint denoting an epoch and block root.
func (b *BeaconState) PreviousJustifiedCheckpoint() *containers.Checkpoint {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.previousJustifiedCheckpoint.Copy()
}

// CurrentJustifiedCheckpoint denoting an epoch and block root.
func (b *BeaconState) CurrentJustifiedCheckpoint() *containers.Checkpoint {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.currentJustifiedCheckpoint.Copy()
}
