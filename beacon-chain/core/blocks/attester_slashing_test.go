package blocks_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
)

func TestSlashableAttesterIndices(t *testing.T) {
	tests := []struct {
		name     string
		slashing *containers.AttesterSlashing
		want     []uint64
	}{
		{
			name:     "nil slashing",
			slashing: nil,
			want:     nil,
		},
		{
			name:     "nil attestation",
			slashing: &containers.AttesterSlashing{Attestation_1: &containers.IndexedAttestation{}},
			want:     nil,
		},
		{
			name: "overlap is sorted",
			slashing: &containers.AttesterSlashing{
				Attestation_1: &containers.IndexedAttestation{AttestingIndices: []uint64{9, 1, 4, 7}},
				Attestation_2: &containers.IndexedAttestation{AttestingIndices: []uint64{7, 2, 9, 4}},
			},
			want: []uint64{4, 7, 9},
		},
		{
			name: "no overlap",
			slashing: &containers.AttesterSlashing{
				Attestation_1: &containers.IndexedAttestation{AttestingIndices: []uint64{1, 2}},
				Attestation_2: &containers.IndexedAttestation{AttestingIndices: []uint64{3, 4}},
			},
			want: []uint64{},
		},
		{
			name: "repeated indices counted once",
			slashing: &containers.AttesterSlashing{
				Attestation_1: &containers.IndexedAttestation{AttestingIndices: []uint64{5, 5, 6}},
				Attestation_2: &containers.IndexedAttestation{AttestingIndices: []uint64{5, 6, 6}},
			},
			want: []uint64{5, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blocks.SlashableAttesterIndices(tt.slashing)
			assert.DeepEqual(t, tt.want, got)
		})
	}
}
