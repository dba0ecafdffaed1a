package blocks

import (
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/container/slice"
)

// SlashableAttesterIndices returns the validator indices named by both attestations of an attester
// slashing, in ascending order. Slashability of the validators is not checked.
//
// Pseudocode definition:
//
//	indices = set(attestation_1.attesting_indices).intersection(attestation_2.attesting_indices)
//	for index in sorted(indices):
//	    if is_slashable_validator(state.validators[index], get_current_epoch(state)):
//	        slash_validator(state, index)
func SlashableAttesterIndices(slashing *containers.AttesterSlashing) []uint64 {
	if slashing == nil || slashing.Attestation_1 == nil || slashing.Attestation_2 == nil {
		return nil
	}
	return slice.SortedIntersectionUint64(slashing.Attestation_1.AttestingIndices, slashing.Attestation_2.AttestingIndices)
}
