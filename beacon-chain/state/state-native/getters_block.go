package state_native

import (
	"fmt"
)

// BlockRootAtIndex retrieves a specific block root based on an
// input index value.
func (b *BeaconState) BlockRootAtIndex(idx uint64) ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.blockRoots)) <= idx {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return copyBytes(b.blockRoots[idx]), nil
}

// BlockRootsLength returns the length of the block roots vector.
func (b *BeaconState) BlockRootsLength() int {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.blockRoots)
}

// RandaoMixAtIndex retrieves a specific block root based on an
// input index value.
func (b *BeaconState) RandaoMixAtIndex(idx uint64) ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.randaoMixes)) <= idx {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return copyBytes(b.randaoMixes[idx]), nil
}

// RandaoMixesLength returns the length of the randao mixes vector.
func (b *BeaconState) RandaoMixesLength() int {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.randaoMixes)
}
