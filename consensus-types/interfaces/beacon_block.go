package interfaces

import (
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

// ReadOnlyBeaconBlock describes an interface which states the methods
// employed by an object that is a beacon block.
type ReadOnlyBeaconBlock interface {
	Slot() primitives.Slot
	ProposerIndex() primitives.ValidatorIndex
	ParentRoot() []byte
	StateRoot() []byte
	Body() ReadOnlyBeaconBlockBody
	IsNil() bool
}

// ReadOnlyBeaconBlockBody describes the method set employed by an object
// that is a beacon block body.
type ReadOnlyBeaconBlockBody interface {
	ProposerSlashings() []*containers.ProposerSlashing
	AttesterSlashings() []*containers.AttesterSlashing
	Attestations() []*containers.Attestation
	// SyncAggregate returns nil when the body carries no sync aggregate.
	SyncAggregate() *containers.SyncAggregate
	IsNil() bool
}
