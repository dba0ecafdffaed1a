package blocks

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/interfaces"
)

var (
	// ErrNilObject is returned in a constructor when the underlying object is nil.
	ErrNilObject = errors.New("received nil object")
	// ErrNilBeaconBlock is returned when a nil beacon block is received.
	ErrNilBeaconBlock = errors.New("beacon block can't be nil")
	// ErrNilBeaconBlockBody is returned when a block without a body is received.
	ErrNilBeaconBlockBody = errors.New("beacon block body can't be nil")
)

// NewBeaconBlock wraps a beacon block container in a read-only beacon block.
func NewBeaconBlock(b *containers.BeaconBlock) (interfaces.ReadOnlyBeaconBlock, error) {
	if b == nil {
		return nil, ErrNilBeaconBlock
	}
	body, err := newBeaconBlockBody(b.Body)
	if err != nil {
		return nil, err
	}
	return &BeaconBlock{
		slot:          b.Slot,
		proposerIndex: b.ProposerIndex,
		parentRoot:    b.ParentRoot,
		stateRoot:     b.StateRoot,
		body:          body,
	}, nil
}

// NewSignedBeaconBlock wraps the message of a signed beacon block container.
func NewSignedBeaconBlock(b *containers.SignedBeaconBlock) (interfaces.ReadOnlyBeaconBlock, error) {
	if b == nil {
		return nil, ErrNilObject
	}
	return NewBeaconBlock(b.Block)
}

func newBeaconBlockBody(b *containers.BeaconBlockBody) (*BeaconBlockBody, error) {
	if b == nil {
		return nil, ErrNilBeaconBlockBody
	}
	return &BeaconBlockBody{
		proposerSlashings: b.ProposerSlashings,
		attesterSlashings: b.AttesterSlashings,
		attestations:      b.Attestations,
		syncAggregate:     b.SyncAggregate,
	}, nil
}
