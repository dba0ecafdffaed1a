package params

import (
	"math"

	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

var mainnetBeaconConfig = &BeaconChainConfig{
	ConfigName: "mainnet",
	PresetBase: "mainnet",

	GenesisEpoch:   0,
	FarFutureEpoch: math.MaxUint64,

	MaxCommitteesPerSlot: 64,
	TargetCommitteeSize:  128,
	ShuffleRoundCount:    90,
	SyncCommitteeSize:    512,

	MaxEffectiveBalance:       32 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	MinAttestationInclusionDelay: 1,
	SlotsPerEpoch:                32,
	MinSeedLookahead:             1,

	EpochsPerHistoricalVector: 65536,
	SlotsPerHistoricalRoot:    8192,

	BaseRewardFactor:            64,
	WhistleBlowerRewardQuotient: 512,

	TimelySourceFlagIndex: 0,
	TimelyTargetFlagIndex: 1,
	TimelyHeadFlagIndex:   2,
	TimelySourceWeight:    14,
	TimelyTargetWeight:    26,
	TimelyHeadWeight:      14,
	SyncRewardWeight:      2,
	ProposerWeight:        8,
	WeightDenominator:     64,

	DomainBeaconAttester: [4]byte{1, 0, 0, 0},

	GenesisForkVersion:   []byte{0, 0, 0, 0},
	AltairForkVersion:    []byte{1, 0, 0, 0},
	AltairForkEpoch:      74240,
	BellatrixForkVersion: []byte{2, 0, 0, 0},
	BellatrixForkEpoch:   144896,
	CapellaForkVersion:   []byte{3, 0, 0, 0},
	CapellaForkEpoch:     194048,
	DenebForkVersion:     []byte{4, 0, 0, 0},
	DenebForkEpoch:       269568,
}

// farFuture is used for fork epochs that are not scheduled.
const farFuture = types.Epoch(math.MaxUint64)
