package blocks

import (
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/interfaces"
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

var (
	_ = interfaces.ReadOnlyBeaconBlock(&BeaconBlock{})
	_ = interfaces.ReadOnlyBeaconBlockBody(&BeaconBlockBody{})
)

// BeaconBlockBody is the main beacon block body structure. It can represent any block type.
type BeaconBlockBody struct {
	proposerSlashings []*containers.ProposerSlashing
	attesterSlashings []*containers.AttesterSlashing
	attestations      []*containers.Attestation
	syncAggregate     *containers.SyncAggregate
}

// BeaconBlock is the main beacon block structure. It can represent any block type.
type BeaconBlock struct {
	slot          types.Slot
	proposerIndex types.ValidatorIndex
	parentRoot    []byte
	stateRoot     []byte
	body          *BeaconBlockBody
}
