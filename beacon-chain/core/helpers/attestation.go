package helpers

import (
	"fmt"

	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/go-bitfield"
)

// AttestingIndices returns the attesting participants indices from the attestation data. The
// committee is provided as an argument rather than a imported implementation from the state.
// Having the committee as an argument allows for re-use of beacon committees when possible.
//
// Pseudocode definition:
//
//	def get_attesting_indices(state: BeaconState,
//	                          data: AttestationData,
//	                          bits: Bitlist[MAX_VALIDATORS_PER_COMMITTEE]) -> Set[ValidatorIndex]:
//	  """
//	  Return the set of attesting indices corresponding to ``data`` and ``bits``.
//	  """
//	  committee = get_beacon_committee(state, data.slot, data.index)
//	  return set(index for i, index in enumerate(committee) if bits[i])
func AttestingIndices(bf bitfield.Bitfield, committee []primitives.ValidatorIndex) ([]uint64, error) {
	if bf.Len() != uint64(len(committee)) {
		return nil, fmt.Errorf("bitfield length %d is not equal to committee length %d", bf.Len(), len(committee))
	}
	indices := make([]uint64, 0, bf.Count())
	for _, idx := range bf.BitIndices() {
		if idx < len(committee) {
			indices = append(indices, uint64(committee[idx]))
		}
	}
	return indices, nil
}

// ValidateNilAttestation checks if any composite field of input attestation is nil.
// Access to these nil fields will result in run time panic,
// it is recommended to run these checks as first line of defense.
func ValidateNilAttestation(attestation *containers.Attestation) error {
	if attestation == nil {
		return errNilAttestation
	}
	if attestation.Data == nil {
		return errNilAttestationData
	}
	if attestation.Data.Target == nil {
		return errNilAttestationTarget
	}
	if attestation.Data.Source == nil {
		return errNilAttestationSource
	}
	if attestation.AggregationBits == nil {
		return errNilAggregationBits
	}
	return nil
}
