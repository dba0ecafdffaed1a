package structs_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/prysmaticlabs/blockrewards/testing/util"
)

func testBlock(t *testing.T) *containers.SignedBeaconBlock {
	util.SetupForkConfig(t, version.Altair)
	st := util.NewBeaconState(t, util.NewBeaconStateData(64, 10))
	blk := util.NewBeaconBlock()
	blk.Block.Slot = 10
	blk.Block.ProposerIndex = 3
	blk.Block.Body.Attestations = []*containers.Attestation{util.GenerateAttestation(t, st, 9, 1, []uint64{0, 2})}
	blk.Block.Body.ProposerSlashings = []*containers.ProposerSlashing{util.GenerateProposerSlashingForValidator(st, 5)}
	blk.Block.Body.AttesterSlashings = []*containers.AttesterSlashing{util.GenerateAttesterSlashingForValidators(st, []uint64{1, 2, 3}, []uint64{2, 3})}
	blk.Block.Body.SyncAggregate = util.NewSyncAggregate(7)
	return blk
}

func TestSignedBeaconBlock_RoundTrip(t *testing.T) {
	blk := testBlock(t)
	enc, err := structs.Marshal(structs.SignedBeaconBlockFromConsensus(blk))
	require.NoError(t, err)

	decoded := &structs.SignedBeaconBlock{}
	require.NoError(t, structs.Unmarshal("block.json", enc, decoded))
	got, err := decoded.ToConsensus()
	require.NoError(t, err)
	assert.DeepEqual(t, blk, got)
}

func TestBeaconState_RoundTrip(t *testing.T) {
	util.SetupForkConfig(t, version.Altair)
	data := util.NewBeaconStateData(8, 20)
	data.CurrentEpochParticipation[2] = 7
	data.Validators[1].Slashed = true

	got, err := structs.BeaconStateFromConsensus(data).ToConsensus()
	require.NoError(t, err)
	assert.DeepEqual(t, data, got)
}

func TestBeaconBlock_ToConsensus_DecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *structs.SignedBeaconBlock)
		errString string
	}{
		{
			name:      "bad slot",
			mutate:    func(b *structs.SignedBeaconBlock) { b.Message.Slot = "foo" },
			errString: "could not decode Message.Slot",
		},
		{
			name:      "short parent root",
			mutate:    func(b *structs.SignedBeaconBlock) { b.Message.ParentRoot = "0x01" },
			errString: "could not decode Message.ParentRoot",
		},
		{
			name:      "nil body",
			mutate:    func(b *structs.SignedBeaconBlock) { b.Message.Body = nil },
			errString: "could not decode Message.Body: nil value",
		},
		{
			name: "bad attestation target",
			mutate: func(b *structs.SignedBeaconBlock) {
				b.Message.Body.Attestations[0].Data.Target.Epoch = "-1"
			},
			errString: "could not decode Message.Body.Attestations[0].Data.Target.Epoch",
		},
		{
			name: "bitlist without length bit",
			mutate: func(b *structs.SignedBeaconBlock) {
				b.Message.Body.Attestations[0].AggregationBits = "0x00"
			},
			errString: "bitlist is missing its length bit",
		},
		{
			name: "bad sync committee bits",
			mutate: func(b *structs.SignedBeaconBlock) {
				b.Message.Body.SyncAggregate.SyncCommitteeBits = "0x0102"
			},
			errString: "could not decode Message.Body.SyncAggregate.SyncCommitteeBits: unexpected length 2",
		},
		{
			name: "bad slashed index",
			mutate: func(b *structs.SignedBeaconBlock) {
				b.Message.Body.AttesterSlashings[0].Attestation2.AttestingIndices[0] = "x"
			},
			errString: "could not decode Message.Body.AttesterSlashings[0].Attestation2.AttestingIndices[0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := structs.SignedBeaconBlockFromConsensus(testBlock(t))
			tt.mutate(b)
			_, err := b.ToConsensus()
			assert.ErrorContains(t, tt.errString, err)
		})
	}
}

func TestUnmarshal_YAML(t *testing.T) {
	in := []byte(`
version: altair
root: "0x0a"
data:
  message:
    slot: "12"
`)
	resp := &structs.GetBlockV2Response{}
	require.NoError(t, structs.Unmarshal("block.yaml", in, resp))
	assert.Equal(t, "altair", resp.Version)
	assert.Equal(t, "0x0a", resp.Root)
	assert.Equal(t, "12", resp.Data.Message.Slot)
}
