package blocks_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestProposerSlashingOffender(t *testing.T) {
	slashing := &containers.ProposerSlashing{
		Header_1: &containers.SignedBeaconBlockHeader{Header: &containers.BeaconBlockHeader{ProposerIndex: 12}},
		Header_2: &containers.SignedBeaconBlockHeader{Header: &containers.BeaconBlockHeader{ProposerIndex: 12}},
	}
	idx, err := blocks.ProposerSlashingOffender(slashing)
	require.NoError(t, err)
	assert.Equal(t, primitives.ValidatorIndex(12), idx)
}

func TestProposerSlashingOffender_Nil(t *testing.T) {
	_, err := blocks.ProposerSlashingOffender(nil)
	assert.ErrorContains(t, "nil proposer slashing", err)

	_, err = blocks.ProposerSlashingOffender(&containers.ProposerSlashing{Header_1: &containers.SignedBeaconBlockHeader{}})
	assert.ErrorContains(t, "nil header in proposer slashing", err)
}
