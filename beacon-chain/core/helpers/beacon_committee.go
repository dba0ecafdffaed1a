package helpers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/cache"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/container/slice"
	mathutil "github.com/prysmaticlabs/blockrewards/math"
	"github.com/prysmaticlabs/blockrewards/time/slots"
	"go.opencensus.io/trace"
)

var committeeCache = mustCommitteeCache()

func mustCommitteeCache() *cache.CommitteeCache {
	c, err := cache.NewCommitteesCache()
	if err != nil {
		panic(err)
	}
	return c
}

// SlotCommitteeCount returns the number of beacon committees of a slot. The
// active validator count is provided as an argument rather than the state, so callers
// that already know the count skip a validator registry scan.
//
// Pseudocode definition:
//
//	def get_committee_count_per_slot(state: BeaconState, epoch: Epoch) -> uint64:
//	  """
//	  Return the number of committees in each slot for the given ``epoch``.
//	  """
//	  return max(uint64(1), min(
//	      MAX_COMMITTEES_PER_SLOT,
//	      uint64(len(get_active_validator_indices(state, epoch))) // SLOTS_PER_EPOCH // TARGET_COMMITTEE_SIZE,
//	  ))
func SlotCommitteeCount(activeValidatorCount uint64) uint64 {
	cfg := params.BeaconConfig()
	var committeesPerSlot = activeValidatorCount / uint64(cfg.SlotsPerEpoch) / cfg.TargetCommitteeSize

	if committeesPerSlot > cfg.MaxCommitteesPerSlot {
		return cfg.MaxCommitteesPerSlot
	}
	if committeesPerSlot == 0 {
		return 1
	}

	return committeesPerSlot
}

// BeaconCommitteeFromState returns the beacon committee of a given slot and committee index,
// reading the active set and seed from state. Shuffled lists are cached per seed.
//
// Pseudocode definition:
//
//	def get_beacon_committee(state: BeaconState, slot: Slot, index: CommitteeIndex) -> Sequence[ValidatorIndex]:
//	  """
//	  Return the beacon committee at ``slot`` for ``index``.
//	  """
//	  epoch = compute_epoch_at_slot(slot)
//	  committees_per_slot = get_committee_count_per_slot(state, epoch)
//	  return compute_committee(
//	      indices=get_active_validator_indices(state, epoch),
//	      seed=get_seed(state, epoch, DOMAIN_BEACON_ATTESTER),
//	      index=(slot % SLOTS_PER_EPOCH) * committees_per_slot + index,
//	      count=committees_per_slot * SLOTS_PER_EPOCH,
//	  )
func BeaconCommitteeFromState(ctx context.Context, st state.ReadOnlyBeaconState, slot primitives.Slot, committeeIndex primitives.CommitteeIndex) ([]primitives.ValidatorIndex, error) {
	ctx, span := trace.StartSpan(ctx, "helpers.BeaconCommitteeFromState")
	defer span.End()

	epoch := slots.ToEpoch(slot)
	seed, err := Seed(st, epoch, params.BeaconConfig().DomainBeaconAttester)
	if err != nil {
		return nil, errors.Wrap(err, "could not get seed")
	}
	activeIndices, err := ActiveValidatorIndices(ctx, st, epoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active indices")
	}
	if committeesPerSlot := SlotCommitteeCount(uint64(len(activeIndices))); uint64(committeeIndex) >= committeesPerSlot {
		return nil, errors.Errorf("committee index %d out of range, committees per slot %d", committeeIndex, committeesPerSlot)
	}

	if err := updateCommitteeCache(ctx, activeIndices, seed); err != nil {
		return nil, errors.Wrap(err, "could not update committee cache")
	}
	committee, err := committeeCache.Committee(ctx, slot, seed, committeeIndex)
	if err != nil {
		return nil, errors.Wrap(err, "could not interface with committee cache")
	}
	if committee != nil {
		return committee, nil
	}
	return BeaconCommittee(ctx, activeIndices, seed, slot, committeeIndex)
}

// BeaconCommittee returns the beacon committee of a given slot and committee index. The
// validator indices and seed are provided as arguments so no state access is needed.
func BeaconCommittee(
	ctx context.Context,
	validatorIndices []primitives.ValidatorIndex,
	seed [32]byte,
	slot primitives.Slot,
	committeeIndex primitives.CommitteeIndex,
) ([]primitives.ValidatorIndex, error) {
	committeesPerSlot := SlotCommitteeCount(uint64(len(validatorIndices)))
	if uint64(committeeIndex) >= committeesPerSlot {
		return nil, errors.Errorf("committee index %d out of range, committees per slot %d", committeeIndex, committeesPerSlot)
	}
	spe := uint64(params.BeaconConfig().SlotsPerEpoch)
	indexOffset, err := mathutil.Add64(uint64(committeeIndex), uint64(slot.Mod(spe))*committeesPerSlot)
	if err != nil {
		return nil, errors.Wrap(err, "could not calculate index offset")
	}
	count := committeesPerSlot * spe

	return computeCommittee(validatorIndices, seed, indexOffset, count)
}

// CommitteeCountAtEpoch returns the number of committees for every slot of the epoch
// the state's active set spans.
func CommitteeCountAtEpoch(ctx context.Context, st state.ReadOnlyBeaconState, epoch primitives.Epoch) (uint64, error) {
	count, err := ActiveValidatorCount(ctx, st, epoch)
	if err != nil {
		return 0, err
	}
	return SlotCommitteeCount(count), nil
}

// ClearCache clears the beacon committee cache.
func ClearCache() {
	committeeCache.Clear()
}

// computeCommittee returns the requested shuffled committee out of the total committees using
// validator indices and seed.
//
// Pseudocode definition:
//
//	def compute_committee(indices: Sequence[ValidatorIndex],
//	                      seed: Bytes32,
//	                      index: uint64,
//	                      count: uint64) -> Sequence[ValidatorIndex]:
//	  """
//	  Return the committee corresponding to ``indices``, ``seed``, ``index``, and committee ``count``.
//	  """
//	  start = (len(indices) * index) // count
//	  end = (len(indices) * uint64(index + 1)) // count
//	  return [indices[compute_shuffled_index(uint64(i), uint64(len(indices)), seed)] for i in range(start, end)]
func computeCommittee(
	indices []primitives.ValidatorIndex,
	seed [32]byte,
	index, count uint64,
) ([]primitives.ValidatorIndex, error) {
	validatorCount := uint64(len(indices))
	start := slice.SplitOffset(validatorCount, count, index)
	end := slice.SplitOffset(validatorCount, count, index+1)

	if start > validatorCount || end > validatorCount {
		return nil, errors.New("index out of range")
	}

	// Save the shuffled indices in cache, this is only needed once per epoch or once per new committee index.
	shuffledIndices := make([]primitives.ValidatorIndex, len(indices))
	copy(shuffledIndices, indices)
	// UnshuffleList is used here as it is an optimized implementation created
	// for fast computation of committees.
	// Reference implementation: https://github.com/protolambda/eth2-shuffle
	shuffledList, err := UnshuffleList(shuffledIndices, seed)
	if err != nil {
		return nil, err
	}

	return shuffledList[start:end], nil
}

// updateCommitteeCache stores the shuffled committees of the given seed unless the cached
// entry was already computed from the same active set.
func updateCommitteeCache(ctx context.Context, activeIndices []primitives.ValidatorIndex, seed [32]byte) error {
	cached, err := committeeCache.ActiveIndices(ctx, seed)
	if err != nil {
		return err
	}
	if cached != nil && sameIndices(cached, activeIndices) {
		return nil
	}

	shuffledIndices := make([]primitives.ValidatorIndex, len(activeIndices))
	copy(shuffledIndices, activeIndices)
	shuffledIndices, err = UnshuffleList(shuffledIndices, seed)
	if err != nil {
		return err
	}
	count := SlotCommitteeCount(uint64(len(activeIndices)))
	return committeeCache.AddCommitteeShuffledList(ctx, &cache.Committees{
		CommitteeCount:  count * uint64(params.BeaconConfig().SlotsPerEpoch),
		Seed:            seed,
		ShuffledIndices: shuffledIndices,
		SortedIndices:   activeIndices,
	})
}

func sameIndices(a, b []primitives.ValidatorIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
