package slots

import (
	"github.com/prysmaticlabs/blockrewards/config/params"
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

// ToEpoch returns the epoch number of the input slot.
func ToEpoch(slot types.Slot) types.Epoch {
	return types.Epoch(uint64(slot) / uint64(params.BeaconConfig().SlotsPerEpoch))
}

// EpochStart returns the first slot number of the current epoch.
func EpochStart(epoch types.Epoch) (types.Slot, error) {
	spe := uint64(params.BeaconConfig().SlotsPerEpoch)
	if spe != 0 && uint64(epoch) > ^uint64(0)/spe {
		return 0, errEpochStartOverflow
	}
	return types.Slot(uint64(epoch) * spe), nil
}
