package altair

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/blockrewards/math"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/time/slots"
	"go.opencensus.io/trace"
)

var errSourceMismatch = errors.New("source epoch does not match")

// epochParticipation holds private copies of the participation lists of a state. Flags set
// while scoring one attestation are visible to the attestations that follow it.
type epochParticipation struct {
	current  []byte
	previous []byte
}

func newEpochParticipation(st state.ReadOnlyBeaconState) (*epochParticipation, error) {
	current, err := st.CurrentEpochParticipation()
	if err != nil {
		return nil, errors.Wrap(err, "could not get current epoch participation")
	}
	previous, err := st.PreviousEpochParticipation()
	if err != nil {
		return nil, errors.Wrap(err, "could not get previous epoch participation")
	}
	return &epochParticipation{current: current, previous: previous}, nil
}

// ProposerRewardFromAttestations returns the reward the proposer of a block earns for including
// atts, given the pre-block state st. The participation flag arithmetic is that of attestation
// processing, but flags are set on private copies and the state is left untouched.
// When verify is set the attestations are also checked for inclusion validity.
//
// Pseudocode definition:
//
//	def process_attestation(state: BeaconState, attestation: Attestation) -> None:
//	  data = attestation.data
//	  assert data.target.epoch in (get_previous_epoch(state), get_current_epoch(state))
//	  assert data.target.epoch == compute_epoch_at_slot(data.slot)
//	  assert data.slot + MIN_ATTESTATION_INCLUSION_DELAY <= state.slot <= data.slot + SLOTS_PER_EPOCH
//	  assert data.index < get_committee_count_per_slot(state, data.target.epoch)
//
//	  committee = get_beacon_committee(state, data.slot, data.index)
//	  assert len(attestation.aggregation_bits) == len(committee)
//
//	  # Participation flag indices
//	  participation_flag_indices = get_attestation_participation_flag_indices(state, data, state.slot - data.slot)
//
//	  # Update epoch participation flags
//	  if data.target.epoch == get_current_epoch(state):
//	      epoch_participation = state.current_epoch_participation
//	  else:
//	      epoch_participation = state.previous_epoch_participation
//
//	  proposer_reward_numerator = 0
//	  for index in get_attesting_indices(state, data, attestation.aggregation_bits):
//	      for flag_index, weight in enumerate(PARTICIPATION_FLAG_WEIGHTS):
//	          if flag_index in participation_flag_indices and not has_flag(epoch_participation[index], flag_index):
//	              epoch_participation[index] = add_flag(epoch_participation[index], flag_index)
//	              proposer_reward_numerator += get_base_reward(state, index) * weight
//
//	  # Reward proposer
//	  proposer_reward_denominator = (WEIGHT_DENOMINATOR - PROPOSER_WEIGHT) * WEIGHT_DENOMINATOR // PROPOSER_WEIGHT
//	  proposer_reward = Gwei(proposer_reward_numerator // proposer_reward_denominator)
//	  increase_balance(state, get_beacon_proposer_index(state), proposer_reward)
func ProposerRewardFromAttestations(
	ctx context.Context,
	st state.ReadOnlyBeaconState,
	atts []*containers.Attestation,
	verify bool,
) (uint64, error) {
	ctx, span := trace.StartSpan(ctx, "altair.ProposerRewardFromAttestations")
	defer span.End()

	if st == nil || st.IsNil() {
		return 0, errors.New("nil state")
	}
	if len(atts) == 0 {
		return 0, nil
	}
	v, err := st.ForkSchedule().VersionAtSlot(st.Slot())
	if err != nil {
		return 0, errors.Wrap(err, "could not determine fork version")
	}
	if v < version.Altair {
		return 0, errors.Errorf("attestation participation is not defined for %s", version.String(v))
	}
	totalBalance, err := helpers.TotalActiveBalance(st)
	if err != nil {
		return 0, errors.Wrap(err, "could not calculate active balance")
	}
	participation, err := newEpochParticipation(st)
	if err != nil {
		return 0, err
	}

	total := uint64(0)
	for i, att := range atts {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		reward, err := proposerRewardFromAttestation(ctx, st, participation, att, totalBalance, v, verify)
		if err != nil {
			return 0, errors.Wrapf(err, "could not process attestation at index %d", i)
		}
		total, err = mathutil.Add64(total, reward)
		if err != nil {
			return 0, errors.Wrap(err, "could not sum attestation rewards")
		}
	}
	return total, nil
}

func proposerRewardFromAttestation(
	ctx context.Context,
	st state.ReadOnlyBeaconState,
	participation *epochParticipation,
	att *containers.Attestation,
	totalBalance uint64,
	v int,
	verify bool,
) (uint64, error) {
	if err := helpers.ValidateNilAttestation(att); err != nil {
		return 0, err
	}
	data := att.Data
	currEpoch := helpers.CurrentEpoch(st)
	prevEpoch := helpers.PrevEpoch(st)
	var epochParticipation []byte
	switch data.Target.Epoch {
	case currEpoch:
		epochParticipation = participation.current
	case prevEpoch:
		epochParticipation = participation.previous
	default:
		return 0, errors.Errorf(
			"expected target epoch (%d) to be the previous epoch (%d) or the current epoch (%d)",
			data.Target.Epoch,
			prevEpoch,
			currEpoch,
		)
	}
	if verify {
		if err := verifyAttestationInclusion(ctx, st, data, v); err != nil {
			return 0, err
		}
	}

	delay, err := st.Slot().SafeSub(uint64(data.Slot))
	if err != nil {
		return 0, errors.Errorf("attestation slot %d is after state slot %d", data.Slot, st.Slot())
	}
	flags, err := AttestationParticipationFlagIndices(st, data, delay, v)
	if err != nil {
		return 0, err
	}
	committee, err := helpers.BeaconCommitteeFromState(ctx, st, data.Slot, data.CommitteeIndex)
	if err != nil {
		return 0, errors.Wrap(err, "could not get beacon committee")
	}
	indices, err := helpers.AttestingIndices(att.AggregationBits, committee)
	if err != nil {
		return 0, err
	}

	cfg := params.BeaconConfig()
	weights := cfg.ParticipationWeights()
	numerator := uint64(0)
	for _, index := range indices {
		if index >= uint64(len(epochParticipation)) {
			return 0, errors.Errorf("index %d exceeds participation length %d", index, len(epochParticipation))
		}
		baseReward, err := helpers.BaseRewardWithTotalBalance(st, primitives.ValidatorIndex(index), totalBalance)
		if err != nil {
			return 0, errors.Wrap(err, "could not get base reward")
		}
		for flagIndex, weight := range weights {
			f := uint8(flagIndex)
			if !flags[f] || HasValidatorFlag(epochParticipation[index], f) {
				continue
			}
			epochParticipation[index] = AddValidatorFlag(epochParticipation[index], f)
			reward, err := mathutil.Mul64(baseReward, weight)
			if err != nil {
				return 0, err
			}
			numerator, err = mathutil.Add64(numerator, reward)
			if err != nil {
				return 0, err
			}
		}
	}
	denominator, err := proposerRewardDenominator()
	if err != nil {
		return 0, err
	}
	return mathutil.Div64(numerator, denominator)
}

// proposerRewardDenominator is (WEIGHT_DENOMINATOR - PROPOSER_WEIGHT) * WEIGHT_DENOMINATOR / PROPOSER_WEIGHT.
func proposerRewardDenominator() (uint64, error) {
	cfg := params.BeaconConfig()
	nonProposerWeight, err := mathutil.Sub64(cfg.WeightDenominator, cfg.ProposerWeight)
	if err != nil {
		return 0, errors.Wrap(err, "proposer weight exceeds weight denominator")
	}
	scaled, err := mathutil.Mul64(nonProposerWeight, cfg.WeightDenominator)
	if err != nil {
		return 0, err
	}
	denominator, err := mathutil.Div64(scaled, cfg.ProposerWeight)
	if err != nil {
		return 0, errors.Wrap(err, "proposer weight is zero")
	}
	if denominator == 0 {
		return 0, errors.New("proposer reward denominator is zero")
	}
	return denominator, nil
}

// verifyAttestationInclusion applies the inclusion checks of attestation processing
// which do not involve signatures.
func verifyAttestationInclusion(ctx context.Context, st state.ReadOnlyBeaconState, data *containers.AttestationData, v int) error {
	cfg := params.BeaconConfig()
	if data.Target.Epoch != slots.ToEpoch(data.Slot) {
		return errors.Errorf("data slot is not in the same epoch as target %d != %d", slots.ToEpoch(data.Slot), data.Target.Epoch)
	}
	if st.Slot() < data.Slot+cfg.MinAttestationInclusionDelay {
		return errors.Errorf(
			"attestation slot %d + inclusion delay %d > state slot %d",
			data.Slot,
			cfg.MinAttestationInclusionDelay,
			st.Slot(),
		)
	}
	// Attestations from the previous epoch remain includable until the end of the current epoch since deneb.
	if v < version.Deneb && st.Slot() > data.Slot+cfg.SlotsPerEpoch {
		return errors.Errorf(
			"state slot %d > attestation slot %d + SLOTS_PER_EPOCH %d",
			st.Slot(),
			data.Slot,
			cfg.SlotsPerEpoch,
		)
	}
	count, err := helpers.CommitteeCountAtEpoch(ctx, st, data.Target.Epoch)
	if err != nil {
		return err
	}
	if uint64(data.CommitteeIndex) >= count {
		return errors.Errorf("committee index %d >= committee count %d", data.CommitteeIndex, count)
	}
	return nil
}

// AttestationParticipationFlagIndices retrieves a map of attestation scoring based on Altair's participation flag indices.
// The fork version selects the inclusion window of the target flag.
//
// Pseudocode definition:
//
//	def get_attestation_participation_flag_indices(state: BeaconState,
//	                                               data: AttestationData,
//	                                               inclusion_delay: uint64) -> Sequence[int]:
//	  """
//	  Return the flag indices that are satisfied by an attestation.
//	  """
//	  if data.target.epoch == get_current_epoch(state):
//	      justified_checkpoint = state.current_justified_checkpoint
//	  else:
//	      justified_checkpoint = state.previous_justified_checkpoint
//
//	  # Matching roots
//	  is_matching_source = data.source == justified_checkpoint
//	  is_matching_target = is_matching_source and data.target.root == get_block_root(state, data.target.epoch)
//	  is_matching_head = is_matching_target and data.beacon_block_root == get_block_root_at_slot(state, data.slot)
//	  assert is_matching_source
//
//	  participation_flag_indices = []
//	  if is_matching_source and inclusion_delay <= integer_squareroot(SLOTS_PER_EPOCH):
//	      participation_flag_indices.append(TIMELY_SOURCE_FLAG_INDEX)
//	  if is_matching_target and inclusion_delay <= SLOTS_PER_EPOCH:
//	      participation_flag_indices.append(TIMELY_TARGET_FLAG_INDEX)
//	  if is_matching_head and inclusion_delay == MIN_ATTESTATION_INCLUSION_DELAY:
//	      participation_flag_indices.append(TIMELY_HEAD_FLAG_INDEX)
//
//	  return participation_flag_indices
func AttestationParticipationFlagIndices(st state.ReadOnlyBeaconState, data *containers.AttestationData, delay primitives.Slot, v int) (map[uint8]bool, error) {
	currEpoch := helpers.CurrentEpoch(st)
	var justifiedCheckpt *containers.Checkpoint
	if data.Target.Epoch == currEpoch {
		justifiedCheckpt = st.CurrentJustifiedCheckpoint()
	} else {
		justifiedCheckpt = st.PreviousJustifiedCheckpoint()
	}

	matchedSrc, matchedTgt, matchedHead, err := MatchingStatus(st, data, justifiedCheckpt)
	if err != nil {
		return nil, err
	}
	if !matchedSrc {
		return nil, errSourceMismatch
	}

	participatedFlags := make(map[uint8]bool)
	cfg := params.BeaconConfig()
	sourceFlagIndex := cfg.TimelySourceFlagIndex
	targetFlagIndex := cfg.TimelyTargetFlagIndex
	headFlagIndex := cfg.TimelyHeadFlagIndex
	slotsPerEpoch := cfg.SlotsPerEpoch
	sqtRootSlots := primitives.Slot(mathutil.IntegerSquareRoot(uint64(slotsPerEpoch)))
	if matchedSrc && delay <= sqtRootSlots {
		participatedFlags[sourceFlagIndex] = true
	}
	matchedSrcTgt := matchedSrc && matchedTgt
	// The target flag has no inclusion delay bound since deneb.
	if matchedSrcTgt && (v >= version.Deneb || delay <= slotsPerEpoch) {
		participatedFlags[targetFlagIndex] = true
	}
	matchedSrcTgtHead := matchedHead && matchedSrcTgt
	if matchedSrcTgtHead && delay == cfg.MinAttestationInclusionDelay {
		participatedFlags[headFlagIndex] = true
	}
	return participatedFlags, nil
}

// MatchingStatus returns the matching statues for attestation data's source target and head.
//
// Pseudocode definition:
//
//	is_matching_source = data.source == justified_checkpoint
//	is_matching_target = is_matching_source and data.target.root == get_block_root(state, data.target.epoch)
//	is_matching_head = is_matching_target and data.beacon_block_root == get_block_root_at_slot(state, data.slot)
func MatchingStatus(st state.ReadOnlyBeaconState, data *containers.AttestationData, cp *containers.Checkpoint) (matchedSrc, matchedTgt, matchedHead bool, err error) {
	matchedSrc = checkpointIsEqual(data.Source, cp)

	r, err := helpers.BlockRoot(st, data.Target.Epoch)
	if err != nil {
		return false, false, false, err
	}
	matchedTgt = bytes.Equal(r, data.Target.Root)

	r, err = helpers.BlockRootAtSlot(st, data.Slot)
	if err != nil {
		return false, false, false, err
	}
	matchedHead = bytes.Equal(r, data.BeaconBlockRoot)
	return
}

func checkpointIsEqual(a, b *containers.Checkpoint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Epoch == b.Epoch && bytes.Equal(a.Root, b.Root)
}

// HasValidatorFlag returns true if the flag at position has set.
func HasValidatorFlag(flag, flagPosition uint8) bool {
	return ((flag >> flagPosition) & 1) == 1
}

// AddValidatorFlag adds new validator flag to existing one.
func AddValidatorFlag(flag, flagPosition uint8) uint8 {
	return flag | (1 << flagPosition)
}
