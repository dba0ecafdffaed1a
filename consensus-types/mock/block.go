// Package mock provides in-memory beacon blocks for tests that need bodies the container
// wrappers cannot express, such as a missing body or a missing sync aggregate.
package mock

import (
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/interfaces"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

type BeaconBlock struct {
	Htr             [32]byte
	BeaconBlockBody interfaces.ReadOnlyBeaconBlockBody
	BlockSlot       primitives.Slot
	Proposer        primitives.ValidatorIndex
}

func (m BeaconBlock) Slot() primitives.Slot {
	return m.BlockSlot
}

func (m BeaconBlock) ProposerIndex() primitives.ValidatorIndex {
	return m.Proposer
}

func (BeaconBlock) ParentRoot() []byte {
	return make([]byte, 32)
}

func (m BeaconBlock) StateRoot() []byte {
	return m.Htr[:]
}

// Body returns nil when no body is set.
func (m BeaconBlock) Body() interfaces.ReadOnlyBeaconBlockBody {
	return m.BeaconBlockBody
}

func (BeaconBlock) IsNil() bool {
	return false
}

type BeaconBlockBody struct {
	Atts          []*containers.Attestation
	ProposerSlash []*containers.ProposerSlashing
	AttesterSlash []*containers.AttesterSlashing
	Aggregate     *containers.SyncAggregate
	Nil           bool
}

func (m BeaconBlockBody) ProposerSlashings() []*containers.ProposerSlashing {
	return m.ProposerSlash
}

func (m BeaconBlockBody) AttesterSlashings() []*containers.AttesterSlashing {
	return m.AttesterSlash
}

func (m BeaconBlockBody) Attestations() []*containers.Attestation {
	return m.Atts
}

func (m BeaconBlockBody) SyncAggregate() *containers.SyncAggregate {
	return m.Aggregate
}

func (m BeaconBlockBody) IsNil() bool {
	return m.Nil
}

var _ interfaces.ReadOnlyBeaconBlock = &BeaconBlock{}
var _ interfaces.ReadOnlyBeaconBlockBody = &BeaconBlockBody{}
