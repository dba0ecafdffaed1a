package blocks

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func Test_NewBeaconBlock(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, err := NewBeaconBlock(nil)
		assert.ErrorIs(t, err, ErrNilBeaconBlock)
	})
	t.Run("nil body", func(t *testing.T) {
		_, err := NewBeaconBlock(&containers.BeaconBlock{Slot: 3})
		assert.ErrorIs(t, err, ErrNilBeaconBlockBody)
	})
	t.Run("fields carried over", func(t *testing.T) {
		atts := []*containers.Attestation{{Data: &containers.AttestationData{Slot: 2}}}
		b, err := NewBeaconBlock(&containers.BeaconBlock{
			Slot:          3,
			ProposerIndex: 7,
			ParentRoot:    []byte{0x01},
			Body:          &containers.BeaconBlockBody{Attestations: atts},
		})
		require.NoError(t, err)
		assert.Equal(t, false, b.IsNil())
		assert.Equal(t, uint64(3), uint64(b.Slot()))
		assert.Equal(t, uint64(7), uint64(b.ProposerIndex()))
		assert.DeepEqual(t, []byte{0x01}, b.ParentRoot())
		assert.Equal(t, 1, len(b.Body().Attestations()))
		assert.Equal(t, true, b.Body().SyncAggregate() == nil)
	})
}

func Test_NewSignedBeaconBlock(t *testing.T) {
	_, err := NewSignedBeaconBlock(nil)
	assert.ErrorIs(t, err, ErrNilObject)

	b, err := NewSignedBeaconBlock(&containers.SignedBeaconBlock{
		Block: &containers.BeaconBlock{Slot: 5, Body: &containers.BeaconBlockBody{}},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), uint64(b.Slot()))
}
