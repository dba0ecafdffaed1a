// Package params defines important constants that are essential to block reward accounting.
package params

import (
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

// BeaconChainConfig contains the subset of beacon chain constants used to account for proposer rewards.
type BeaconChainConfig struct {
	// Meta.
	ConfigName string `yaml:"CONFIG_NAME"`
	PresetBase string `yaml:"PRESET_BASE"`

	// Constants.
	GenesisEpoch   types.Epoch `yaml:"GENESIS_EPOCH"`
	FarFutureEpoch types.Epoch `yaml:"FAR_FUTURE_EPOCH"`

	// Misc.
	MaxCommitteesPerSlot uint64 `yaml:"MAX_COMMITTEES_PER_SLOT"`
	TargetCommitteeSize  uint64 `yaml:"TARGET_COMMITTEE_SIZE"`
	ShuffleRoundCount    uint64 `yaml:"SHUFFLE_ROUND_COUNT"`
	SyncCommitteeSize    uint64 `yaml:"SYNC_COMMITTEE_SIZE"`

	// Gwei values.
	MaxEffectiveBalance       uint64 `yaml:"MAX_EFFECTIVE_BALANCE"`
	EffectiveBalanceIncrement uint64 `yaml:"EFFECTIVE_BALANCE_INCREMENT"`

	// Time parameters.
	MinAttestationInclusionDelay types.Slot  `yaml:"MIN_ATTESTATION_INCLUSION_DELAY"`
	SlotsPerEpoch                types.Slot  `yaml:"SLOTS_PER_EPOCH"`
	MinSeedLookahead             types.Epoch `yaml:"MIN_SEED_LOOKAHEAD"`

	// State list lengths.
	EpochsPerHistoricalVector types.Epoch `yaml:"EPOCHS_PER_HISTORICAL_VECTOR"`
	SlotsPerHistoricalRoot    types.Slot  `yaml:"SLOTS_PER_HISTORICAL_ROOT"`

	// Reward and penalty quotients.
	BaseRewardFactor            uint64 `yaml:"BASE_REWARD_FACTOR"`
	WhistleBlowerRewardQuotient uint64 `yaml:"WHISTLEBLOWER_REWARD_QUOTIENT"`

	// Participation flags and incentivization weights.
	TimelySourceFlagIndex uint8  `yaml:"TIMELY_SOURCE_FLAG_INDEX"`
	TimelyTargetFlagIndex uint8  `yaml:"TIMELY_TARGET_FLAG_INDEX"`
	TimelyHeadFlagIndex   uint8  `yaml:"TIMELY_HEAD_FLAG_INDEX"`
	TimelySourceWeight    uint64 `yaml:"TIMELY_SOURCE_WEIGHT"`
	TimelyTargetWeight    uint64 `yaml:"TIMELY_TARGET_WEIGHT"`
	TimelyHeadWeight      uint64 `yaml:"TIMELY_HEAD_WEIGHT"`
	SyncRewardWeight      uint64 `yaml:"SYNC_REWARD_WEIGHT"`
	ProposerWeight        uint64 `yaml:"PROPOSER_WEIGHT"`
	WeightDenominator     uint64 `yaml:"WEIGHT_DENOMINATOR"`

	// Signature domains.
	DomainBeaconAttester [4]byte `yaml:"DOMAIN_BEACON_ATTESTER"`

	// Fork schedule.
	GenesisForkVersion   []byte      `yaml:"GENESIS_FORK_VERSION"`
	AltairForkVersion    []byte      `yaml:"ALTAIR_FORK_VERSION"`
	AltairForkEpoch      types.Epoch `yaml:"ALTAIR_FORK_EPOCH"`
	BellatrixForkVersion []byte      `yaml:"BELLATRIX_FORK_VERSION"`
	BellatrixForkEpoch   types.Epoch `yaml:"BELLATRIX_FORK_EPOCH"`
	CapellaForkVersion   []byte      `yaml:"CAPELLA_FORK_VERSION"`
	CapellaForkEpoch     types.Epoch `yaml:"CAPELLA_FORK_EPOCH"`
	DenebForkVersion     []byte      `yaml:"DENEB_FORK_VERSION"`
	DenebForkEpoch       types.Epoch `yaml:"DENEB_FORK_EPOCH"`
}

// ParticipationWeights returns the incentivization weights indexed by participation flag index.
func (b *BeaconChainConfig) ParticipationWeights() []uint64 {
	weights := make([]uint64, 3)
	weights[b.TimelySourceFlagIndex] = b.TimelySourceWeight
	weights[b.TimelyTargetFlagIndex] = b.TimelyTargetWeight
	weights[b.TimelyHeadFlagIndex] = b.TimelyHeadWeight
	return weights
}
