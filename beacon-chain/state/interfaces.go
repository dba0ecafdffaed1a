// Package state defines the read-only beacon state interface consumed by
// reward accounting, including scoped interfaces such as a ReadOnlyValidator.
package state

import (
	"errors"

	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/network/forks"
)

var (
	// ErrNilValidatorsInState returns when accessing validators in the state while the state has a
	// nil slice for the validators field.
	ErrNilValidatorsInState = errors.New("state has nil validator slice")
	// ErrNilParticipation is returned when accessing participation bits on a state without them.
	ErrNilParticipation = errors.New("state has nil participation")
)

// ReadOnlyBeaconState defines a struct which only has read access to beacon state methods.
type ReadOnlyBeaconState interface {
	ReadOnlyValidators
	ReadOnlyBlockRoots
	ReadOnlyRandaoMixes
	ReadOnlyCheckpoint
	ReadOnlyParticipation
	Slot() primitives.Slot
	GenesisValidatorsRoot() []byte
	// SyncProposerReward is the reward a proposer earns per included sync committee signature.
	SyncProposerReward() uint64
	ForkSchedule() *forks.Schedule
	Copy() ReadOnlyBeaconState
	ToData() *containers.BeaconStateData
	IsNil() bool
}

// ReadOnlyValidator defines a struct which only has read access to validator methods.
type ReadOnlyValidator interface {
	EffectiveBalance() uint64
	ActivationEpoch() primitives.Epoch
	WithdrawableEpoch() primitives.Epoch
	ExitEpoch() primitives.Epoch
	PublicKey() [48]byte
	Slashed() bool
	IsNil() bool
}

// ReadOnlyValidators defines a struct which only has read access to validators methods.
type ReadOnlyValidators interface {
	ValidatorAtIndexReadOnly(idx primitives.ValidatorIndex) (ReadOnlyValidator, error)
	EffectiveBalanceAtIndex(idx primitives.ValidatorIndex) (uint64, error)
	NumValidators() int
	ReadFromEveryValidator(f func(idx int, val ReadOnlyValidator) error) error
}

// ReadOnlyBlockRoots defines a struct which only has read access to block roots methods.
type ReadOnlyBlockRoots interface {
	BlockRootAtIndex(idx uint64) ([]byte, error)
	BlockRootsLength() int
}

// ReadOnlyRandaoMixes defines a struct which only has read access to randao mixes methods.
type ReadOnlyRandaoMixes interface {
	RandaoMixAtIndex(idx uint64) ([]byte, error)
	RandaoMixesLength() int
}

// ReadOnlyCheckpoint defines a struct which only has read access to checkpoint methods.
type ReadOnlyCheckpoint interface {
	PreviousJustifiedCheckpoint() *containers.Checkpoint
	CurrentJustifiedCheckpoint() *containers.Checkpoint
}

// ReadOnlyParticipation defines a struct which only has read access to participation methods.
// Returned slices are copies and may be modified by the caller.
type ReadOnlyParticipation interface {
	CurrentEpochParticipation() ([]byte, error)
	PreviousEpochParticipation() ([]byte, error)
}
