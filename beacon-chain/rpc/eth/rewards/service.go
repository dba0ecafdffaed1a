package rewards

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/altair"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/interfaces"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/blockrewards/math"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "rewards")

// ErrUnsupportedForkOperation is returned when a reward component is not defined for the fork
// the block belongs to.
var ErrUnsupportedForkOperation = errors.New("operation not supported for fork")

// BlockRewardsFetcher is a interface that provides access to reward related responses.
type BlockRewardsFetcher interface {
	GetBlockRewardsData(ctx context.Context, blk interfaces.ReadOnlyBeaconBlock, preState state.ReadOnlyBeaconState) (*BlockRewards, error)
}

// BlockRewardService implements BlockRewardsFetcher and can be declared to access the underlying functions.
type BlockRewardService struct{}

// GetBlockRewardsData returns the rewards earned by the proposer of blk. preState must be the state
// the block is applied to, already advanced to the block's slot. The state is never modified.
func (rs *BlockRewardService) GetBlockRewardsData(
	ctx context.Context,
	blk interfaces.ReadOnlyBeaconBlock,
	preState state.ReadOnlyBeaconState,
) (*BlockRewards, error) {
	ctx, span := trace.StartSpan(ctx, "rewards.GetBlockRewardsData")
	defer span.End()

	if blk == nil || blk.IsNil() {
		return nil, errors.New("nil block")
	}
	if blk.Body() == nil || blk.Body().IsNil() {
		return nil, errors.New("nil block body")
	}
	if preState == nil || preState.IsNil() {
		return nil, errors.New("nil pre-state")
	}
	if preState.Slot() != blk.Slot() {
		return nil, errors.Errorf("pre-state slot %d does not match block slot %d", preState.Slot(), blk.Slot())
	}
	v, err := preState.ForkSchedule().VersionAtSlot(blk.Slot())
	if err != nil {
		return nil, errors.Wrap(err, "could not determine fork version")
	}
	span.AddAttributes(trace.StringAttribute("fork", version.String(v)), trace.Int64Attribute("slot", int64(blk.Slot())))

	start := time.Now()
	var rewards *BlockRewards
	switch v {
	case version.Phase0:
		return nil, errors.Wrapf(ErrUnsupportedForkOperation, "block rewards are not computed for %s", version.String(v))
	case version.Altair, version.Bellatrix, version.Capella, version.Deneb:
		rewards, err = computeAltairBlockRewards(ctx, blk, preState)
	default:
		return nil, errors.Errorf("unknown version %d", v)
	}
	if err != nil {
		return nil, err
	}
	blockRewardsComputed.WithLabelValues(version.String(v)).Inc()
	blockRewardsComputationTime.Observe(float64(time.Since(start).Milliseconds()))
	log.WithFields(logrus.Fields{
		"slot":          blk.Slot(),
		"proposerIndex": rewards.ProposerIndex,
		"total":         rewards.Total,
	}).Debug("Computed block rewards")
	return rewards, nil
}

// computeAltairBlockRewards computes the reward breakdown for blocks from altair onwards.
func computeAltairBlockRewards(ctx context.Context, blk interfaces.ReadOnlyBeaconBlock, preState state.ReadOnlyBeaconState) (*BlockRewards, error) {
	attsReward, err := attestationsReward(ctx, blk, preState)
	if err != nil {
		return nil, errors.Wrap(err, "could not get attestation rewards")
	}
	syncReward := syncAggregateReward(blk, preState)
	proposerSlashingsReward, err := proposerSlashingsReward(blk, preState)
	if err != nil {
		return nil, errors.Wrap(err, "could not get proposer slashing rewards")
	}
	attesterSlashingsReward, err := attesterSlashingsReward(blk, preState)
	if err != nil {
		return nil, errors.Wrap(err, "could not get attester slashing rewards")
	}

	total := uint64(0)
	for _, r := range []uint64{attsReward, syncReward, proposerSlashingsReward, attesterSlashingsReward} {
		total, err = mathutil.Add64(total, r)
		if err != nil {
			return nil, errors.Wrap(err, "could not sum block rewards")
		}
	}
	return &BlockRewards{
		ProposerIndex:     blk.ProposerIndex(),
		Total:             total,
		Attestations:      attsReward,
		SyncAggregate:     syncReward,
		ProposerSlashings: proposerSlashingsReward,
		AttesterSlashings: attesterSlashingsReward,
	}, nil
}

// attestationsReward scores the block's attestations against private copies of the pre-state's
// participation, so repeated calls on the same pre-state agree.
func attestationsReward(ctx context.Context, blk interfaces.ReadOnlyBeaconBlock, preState state.ReadOnlyBeaconState) (uint64, error) {
	ctx, span := trace.StartSpan(ctx, "rewards.attestationsReward")
	defer span.End()

	return altair.ProposerRewardFromAttestations(ctx, preState, blk.Body().Attestations(), false)
}

// syncAggregateReward is the proposer reward for every sync committee signature in the block.
func syncAggregateReward(blk interfaces.ReadOnlyBeaconBlock, preState state.ReadOnlyBeaconState) uint64 {
	agg := blk.Body().SyncAggregate()
	if agg == nil || agg.SyncCommitteeBits == nil {
		return 0
	}
	return agg.SyncCommitteeBits.Count() * preState.SyncProposerReward()
}

// proposerSlashingsReward is the whistleblower reward for every proposer slashing in the block.
// Duplicate slashings are each counted.
func proposerSlashingsReward(blk interfaces.ReadOnlyBeaconBlock, preState state.ReadOnlyBeaconState) (uint64, error) {
	total := uint64(0)
	for i, slashing := range blk.Body().ProposerSlashings() {
		idx, err := blocks.ProposerSlashingOffender(slashing)
		if err != nil {
			return 0, errors.Wrapf(err, "proposer slashing at index %d", i)
		}
		reward, err := whistleblowerReward(preState, idx)
		if err != nil {
			return 0, err
		}
		total, err = mathutil.Add64(total, reward)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// attesterSlashingsReward is the whistleblower reward for every validator named by both
// attestations of each attester slashing in the block.
func attesterSlashingsReward(blk interfaces.ReadOnlyBeaconBlock, preState state.ReadOnlyBeaconState) (uint64, error) {
	total := uint64(0)
	for _, slashing := range blk.Body().AttesterSlashings() {
		for _, idx := range blocks.SlashableAttesterIndices(slashing) {
			reward, err := whistleblowerReward(preState, primitives.ValidatorIndex(idx))
			if err != nil {
				return 0, err
			}
			total, err = mathutil.Add64(total, reward)
			if err != nil {
				return 0, err
			}
		}
	}
	return total, nil
}

func whistleblowerReward(preState state.ReadOnlyBeaconState, idx primitives.ValidatorIndex) (uint64, error) {
	eb, err := preState.EffectiveBalanceAtIndex(idx)
	if err != nil {
		return 0, errors.Wrapf(err, "could not get effective balance of validator %d", idx)
	}
	reward, err := mathutil.Div64(eb, params.BeaconConfig().WhistleBlowerRewardQuotient)
	if err != nil {
		return 0, errors.Wrap(err, "invalid whistleblower reward quotient")
	}
	return reward, nil
}
