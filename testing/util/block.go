package util

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/time/slots"
	"github.com/prysmaticlabs/go-bitfield"
)

const signatureLength = 96

// NewBeaconBlock creates a beacon block with minimum marshalable fields.
func NewBeaconBlock() *containers.SignedBeaconBlock {
	return HydrateSignedBeaconBlock(&containers.SignedBeaconBlock{})
}

// HydrateSignedBeaconBlock hydrates a signed beacon block with correct field length sizes.
func HydrateSignedBeaconBlock(b *containers.SignedBeaconBlock) *containers.SignedBeaconBlock {
	if b.Signature == nil {
		b.Signature = make([]byte, signatureLength)
	}
	b.Block = HydrateBeaconBlock(b.Block)
	return b
}

// HydrateBeaconBlock hydrates a beacon block with correct field length sizes.
func HydrateBeaconBlock(b *containers.BeaconBlock) *containers.BeaconBlock {
	if b == nil {
		b = &containers.BeaconBlock{}
	}
	if b.ParentRoot == nil {
		b.ParentRoot = make([]byte, 32)
	}
	if b.StateRoot == nil {
		b.StateRoot = make([]byte, 32)
	}
	b.Body = HydrateBeaconBlockBody(b.Body)
	return b
}

// HydrateBeaconBlockBody hydrates a beacon block body with correct field length sizes.
func HydrateBeaconBlockBody(b *containers.BeaconBlockBody) *containers.BeaconBlockBody {
	if b == nil {
		b = &containers.BeaconBlockBody{}
	}
	if b.RandaoReveal == nil {
		b.RandaoReveal = make([]byte, signatureLength)
	}
	if b.Graffiti == nil {
		b.Graffiti = make([]byte, 32)
	}
	if b.ProposerSlashings == nil {
		b.ProposerSlashings = []*containers.ProposerSlashing{}
	}
	if b.AttesterSlashings == nil {
		b.AttesterSlashings = []*containers.AttesterSlashing{}
	}
	if b.Attestations == nil {
		b.Attestations = []*containers.Attestation{}
	}
	return b
}

// GenerateAttestation builds an attestation for the committee at slot and committeeIndex, voting for the
// roots recorded in st. Every member whose committee position is listed in participants is marked as
// attesting; a nil participants list marks the full committee.
func GenerateAttestation(
	t testing.TB,
	st state.ReadOnlyBeaconState,
	slot primitives.Slot,
	committeeIndex primitives.CommitteeIndex,
	participants []uint64,
) *containers.Attestation {
	committee, err := helpers.BeaconCommitteeFromState(context.Background(), st, slot, committeeIndex)
	if err != nil {
		t.Fatal(err)
	}
	bits := bitfield.NewBitlist(uint64(len(committee)))
	if participants == nil {
		for i := range committee {
			bits.SetBitAt(uint64(i), true)
		}
	}
	for _, p := range participants {
		bits.SetBitAt(p, true)
	}

	targetEpoch := slots.ToEpoch(slot)
	source := st.PreviousJustifiedCheckpoint()
	if targetEpoch == helpers.CurrentEpoch(st) {
		source = st.CurrentJustifiedCheckpoint()
	}
	targetRoot, err := helpers.BlockRoot(st, targetEpoch)
	if err != nil {
		t.Fatal(err)
	}
	headRoot, err := helpers.BlockRootAtSlot(st, slot)
	if err != nil {
		t.Fatal(err)
	}
	return &containers.Attestation{
		AggregationBits: bits,
		Data: &containers.AttestationData{
			Slot:            slot,
			CommitteeIndex:  committeeIndex,
			BeaconBlockRoot: headRoot,
			Source:          source,
			Target:          &containers.Checkpoint{Epoch: targetEpoch, Root: targetRoot},
		},
		Signature: make([]byte, signatureLength),
	}
}

// GenerateProposerSlashingForValidator for a specific validator index.
func GenerateProposerSlashingForValidator(st state.ReadOnlyBeaconState, idx primitives.ValidatorIndex) *containers.ProposerSlashing {
	header := func(bodyRoot byte) *containers.SignedBeaconBlockHeader {
		br := make([]byte, 32)
		br[1] = bodyRoot
		return &containers.SignedBeaconBlockHeader{
			Header: &containers.BeaconBlockHeader{
				Slot:          st.Slot(),
				ProposerIndex: idx,
				ParentRoot:    make([]byte, 32),
				StateRoot:     make([]byte, 32),
				BodyRoot:      br,
			},
			Signature: make([]byte, signatureLength),
		}
	}
	return &containers.ProposerSlashing{
		Header_1: header(1),
		Header_2: header(2),
	}
}

// GenerateAttesterSlashingForValidators builds a double vote slashing whose attestations are signed by
// indices1 and indices2 respectively.
func GenerateAttesterSlashingForValidators(st state.ReadOnlyBeaconState, indices1, indices2 []uint64) *containers.AttesterSlashing {
	currentEpoch := helpers.CurrentEpoch(st)
	att := func(indices []uint64, blockRoot byte) *containers.IndexedAttestation {
		br := make([]byte, 32)
		br[0] = blockRoot
		return &containers.IndexedAttestation{
			AttestingIndices: indices,
			Data: &containers.AttestationData{
				Slot:            st.Slot(),
				BeaconBlockRoot: br,
				Source:          &containers.Checkpoint{Epoch: currentEpoch, Root: make([]byte, 32)},
				Target:          &containers.Checkpoint{Epoch: currentEpoch, Root: make([]byte, 32)},
			},
			Signature: make([]byte, signatureLength),
		}
	}
	return &containers.AttesterSlashing{
		Attestation_1: att(indices1, 1),
		Attestation_2: att(indices2, 2),
	}
}

// NewSyncAggregate returns a sync aggregate sized for the configured sync committee with the first
// participants bits set.
func NewSyncAggregate(participants uint64) *containers.SyncAggregate {
	var bits bitfield.Bitfield
	if size := params.BeaconConfig().SyncCommitteeSize; size == 32 {
		bv := bitfield.NewBitvector32()
		for i := uint64(0); i < participants && i < size; i++ {
			bv.SetBitAt(i, true)
		}
		bits = bv
	} else {
		bv := bitfield.NewBitvector512()
		for i := uint64(0); i < participants && i < bv.Len(); i++ {
			bv.SetBitAt(i, true)
		}
		bits = bv
	}
	return &containers.SyncAggregate{
		SyncCommitteeBits:      bits,
		SyncCommitteeSignature: make([]byte, signatureLength),
	}
}
