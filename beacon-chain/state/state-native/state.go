package state_native

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/altair"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/network/forks"
)

var (
	_ state.ReadOnlyBeaconState = (*BeaconState)(nil)

	// ErrNilStateData is returned when a state is initialized from nil data.
	ErrNilStateData = errors.New("received nil state data")
)

// BeaconState defines a read-only snapshot of the beacon chain state.
type BeaconState struct {
	slot                        primitives.Slot
	genesisValidatorsRoot       []byte
	validators                  []*containers.Validator
	blockRoots                  [][]byte
	randaoMixes                 [][]byte
	previousEpochParticipation  []byte
	currentEpochParticipation   []byte
	previousJustifiedCheckpoint *containers.Checkpoint
	currentJustifiedCheckpoint  *containers.Checkpoint

	syncProposerReward uint64
	forkSchedule       *forks.Schedule
	lock               sync.RWMutex
}

// InitializeFromData builds a beacon state from raw state data. The input is deep copied,
// vector lengths are validated against the beacon config and the per signature sync
// proposer reward is computed once.
func InitializeFromData(data *containers.BeaconStateData) (*BeaconState, error) {
	if data == nil {
		return nil, ErrNilStateData
	}
	if data.Validators == nil {
		return nil, state.ErrNilValidatorsInState
	}
	cfg := params.BeaconConfig()
	if uint64(len(data.BlockRoots)) != uint64(cfg.SlotsPerHistoricalRoot) {
		return nil, errors.Errorf("wrong number of block roots, wanted %d got %d", cfg.SlotsPerHistoricalRoot, len(data.BlockRoots))
	}
	if uint64(len(data.RandaoMixes)) != uint64(cfg.EpochsPerHistoricalVector) {
		return nil, errors.Errorf("wrong number of randao mixes, wanted %d got %d", cfg.EpochsPerHistoricalVector, len(data.RandaoMixes))
	}
	numVals := len(data.Validators)
	prev, err := participationOrDefault(data.PreviousEpochParticipation, numVals)
	if err != nil {
		return nil, errors.Wrap(err, "previous epoch participation")
	}
	curr, err := participationOrDefault(data.CurrentEpochParticipation, numVals)
	if err != nil {
		return nil, errors.Wrap(err, "current epoch participation")
	}

	validators := make([]*containers.Validator, numVals)
	for i, v := range data.Validators {
		if v == nil {
			return nil, errors.Errorf("nil validator at index %d", i)
		}
		validators[i] = v.Copy()
	}
	b := &BeaconState{
		slot:                        data.Slot,
		genesisValidatorsRoot:       copyBytes(data.GenesisValidatorsRoot),
		validators:                  validators,
		blockRoots:                  copy2dBytes(data.BlockRoots),
		randaoMixes:                 copy2dBytes(data.RandaoMixes),
		previousEpochParticipation:  prev,
		currentEpochParticipation:   curr,
		previousJustifiedCheckpoint: checkpointOrDefault(data.PreviousJustifiedCheckpoint),
		currentJustifiedCheckpoint:  checkpointOrDefault(data.CurrentJustifiedCheckpoint),
		forkSchedule:                forks.BeaconSchedule(),
	}

	totalBalance, err := helpers.TotalActiveBalance(b)
	if err != nil {
		return nil, errors.Wrap(err, "could not get total active balance")
	}
	_, proposerReward, err := altair.SyncRewards(totalBalance)
	if err != nil {
		return nil, errors.Wrap(err, "could not get sync reward")
	}
	b.syncProposerReward = proposerReward
	return b, nil
}

// Copy returns a deep copy of the beacon state.
func (b *BeaconState) Copy() state.ReadOnlyBeaconState {
	b.lock.RLock()
	defer b.lock.RUnlock()

	validators := make([]*containers.Validator, len(b.validators))
	for i, v := range b.validators {
		validators[i] = v.Copy()
	}
	return &BeaconState{
		slot:                        b.slot,
		genesisValidatorsRoot:       copyBytes(b.genesisValidatorsRoot),
		validators:                  validators,
		blockRoots:                  copy2dBytes(b.blockRoots),
		randaoMixes:                 copy2dBytes(b.randaoMixes),
		previousEpochParticipation:  copyBytes(b.previousEpochParticipation),
		currentEpochParticipation:   copyBytes(b.currentEpochParticipation),
		previousJustifiedCheckpoint: b.previousJustifiedCheckpoint.Copy(),
		currentJustifiedCheckpoint:  b.currentJustifiedCheckpoint.Copy(),
		syncProposerReward:          b.syncProposerReward,
		forkSchedule:                b.forkSchedule,
	}
}

// ToData returns a deep copy of the raw state data backing the beacon state.
func (b *BeaconState) ToData() *containers.BeaconStateData {
	b.lock.RLock()
	defer b.lock.RUnlock()

	validators := make([]*containers.Validator, len(b.validators))
	for i, v := range b.validators {
		validators[i] = v.Copy()
	}
	return &containers.BeaconStateData{
		Slot:                        b.slot,
		GenesisValidatorsRoot:       copyBytes(b.genesisValidatorsRoot),
		Validators:                  validators,
		BlockRoots:                  copy2dBytes(b.blockRoots),
		RandaoMixes:                 copy2dBytes(b.randaoMixes),
		PreviousEpochParticipation:  copyBytes(b.previousEpochParticipation),
		CurrentEpochParticipation:   copyBytes(b.currentEpochParticipation),
		PreviousJustifiedCheckpoint: b.previousJustifiedCheckpoint.Copy(),
		CurrentJustifiedCheckpoint:  b.currentJustifiedCheckpoint.Copy(),
	}
}

// IsNil checks if the state is nil.
func (b *BeaconState) IsNil() bool {
	return b == nil
}

func participationOrDefault(p []byte, numVals int) ([]byte, error) {
	if len(p) == 0 {
		return make([]byte, numVals), nil
	}
	if len(p) != numVals {
		return nil, errors.Errorf("wanted %d participation entries, got %d", numVals, len(p))
	}
	return copyBytes(p), nil
}

func checkpointOrDefault(c *containers.Checkpoint) *containers.Checkpoint {
	if c == nil {
		return &containers.Checkpoint{Root: make([]byte, 32)}
	}
	return c.Copy()
}
