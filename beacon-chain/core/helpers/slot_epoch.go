package helpers

import (
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/time/slots"
)

// CurrentEpoch returns the current epoch number calculated from
// the slot number stored in beacon state.
//
// Pseudocode definition:
//
//	def get_current_epoch(state: BeaconState) -> Epoch:
//	  """
//	  Return the current epoch.
//	  """
//	  return compute_epoch_at_slot(state.slot)
func CurrentEpoch(st state.ReadOnlyBeaconState) primitives.Epoch {
	return slots.ToEpoch(st.Slot())
}

// PrevEpoch returns the previous epoch number calculated from
// the slot number stored in beacon state. It also checks for
// underflow condition.
//
// Pseudocode definition:
//
//	def get_previous_epoch(state: BeaconState) -> Epoch:
//	  """
//	  Return the previous epoch (unless the current epoch is ``GENESIS_EPOCH``).
//	  """
//	  current_epoch = get_current_epoch(state)
//	  return GENESIS_EPOCH if current_epoch == GENESIS_EPOCH else Epoch(current_epoch - 1)
func PrevEpoch(st state.ReadOnlyBeaconState) primitives.Epoch {
	currentEpoch := CurrentEpoch(st)
	if currentEpoch == params.BeaconConfig().GenesisEpoch {
		return params.BeaconConfig().GenesisEpoch
	}
	return currentEpoch - 1
}
