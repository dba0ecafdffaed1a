package helpers_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/prysmaticlabs/go-bitfield"
)

func TestAttestingIndices(t *testing.T) {
	committee := []primitives.ValidatorIndex{10, 20, 30, 40}
	bits := bitfield.NewBitlist(4)
	bits.SetBitAt(1, true)
	bits.SetBitAt(3, true)

	indices, err := helpers.AttestingIndices(bits, committee)
	require.NoError(t, err)
	assert.DeepEqual(t, []uint64{20, 40}, indices)
}

func TestAttestingIndices_LengthMismatch(t *testing.T) {
	committee := []primitives.ValidatorIndex{10, 20, 30}
	_, err := helpers.AttestingIndices(bitfield.NewBitlist(4), committee)
	assert.ErrorContains(t, "bitfield length 4 is not equal to committee length 3", err)
}

func TestValidateNilAttestation(t *testing.T) {
	tests := []struct {
		name        string
		attestation *containers.Attestation
		errString   string
	}{
		{
			name:        "nil attestation",
			attestation: nil,
			errString:   "attestation can't be nil",
		},
		{
			name:        "nil attestation data",
			attestation: &containers.Attestation{},
			errString:   "attestation's data can't be nil",
		},
		{
			name: "nil attestation target",
			attestation: &containers.Attestation{
				Data: &containers.AttestationData{},
			},
			errString: "attestation's target can't be nil",
		},
		{
			name: "nil attestation source",
			attestation: &containers.Attestation{
				Data: &containers.AttestationData{
					Target: &containers.Checkpoint{},
				},
			},
			errString: "attestation's source can't be nil",
		},
		{
			name: "nil attestation bitfield",
			attestation: &containers.Attestation{
				Data: &containers.AttestationData{
					Target: &containers.Checkpoint{},
					Source: &containers.Checkpoint{},
				},
			},
			errString: "attestation's bitfield can't be nil",
		},
		{
			name: "good attestation",
			attestation: &containers.Attestation{
				Data: &containers.AttestationData{
					Target: &containers.Checkpoint{},
					Source: &containers.Checkpoint{},
				},
				AggregationBits: bitfield.NewBitlist(2),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := helpers.ValidateNilAttestation(tt.attestation)
			if tt.errString != "" {
				require.ErrorContains(t, tt.errString, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
