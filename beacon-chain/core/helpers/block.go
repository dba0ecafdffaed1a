package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/time/slots"
)

// BlockRootAtSlot returns the block root stored in the BeaconState for a recent slot.
// It returns an error if the requested block root is not within the slot range.
//
// Pseudocode definition:
//
//	def get_block_root_at_slot(state: BeaconState, slot: Slot) -> Root:
//	  """
//	  Return the block root at a recent ``slot``.
//	  """
//	  assert slot < state.slot <= slot + SLOTS_PER_HISTORICAL_ROOT
//	  return state.block_roots[slot % SLOTS_PER_HISTORICAL_ROOT]
func BlockRootAtSlot(st state.ReadOnlyBeaconState, slot primitives.Slot) ([]byte, error) {
	slotsPerHistoricalRoot := params.BeaconConfig().SlotsPerHistoricalRoot
	stateSlot := st.Slot()
	if slot >= stateSlot || uint64(stateSlot) > uint64(slot)+uint64(slotsPerHistoricalRoot) {
		return []byte{}, errors.Errorf("slot %d out of bounds", slot)
	}
	return st.BlockRootAtIndex(uint64(slot % slotsPerHistoricalRoot))
}

// BlockRoot returns the block root stored in the BeaconState for epoch start slot.
//
// Pseudocode definition:
//
//	def get_block_root(state: BeaconState, epoch: Epoch) -> Root:
//	  """
//	  Return the block root at the start of a recent ``epoch``.
//	  """
//	  return get_block_root_at_slot(state, compute_start_slot_at_epoch(epoch))
func BlockRoot(st state.ReadOnlyBeaconState, epoch primitives.Epoch) ([]byte, error) {
	s, err := slots.EpochStart(epoch)
	if err != nil {
		return nil, err
	}
	return BlockRootAtSlot(st, s)
}
