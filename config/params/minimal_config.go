package params

// MinimalSpecConfig retrieves the minimal preset configuration.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()
	minimalConfig.ConfigName = "minimal"
	minimalConfig.PresetBase = "minimal"

	// Misc
	minimalConfig.MaxCommitteesPerSlot = 4
	minimalConfig.TargetCommitteeSize = 4
	minimalConfig.ShuffleRoundCount = 10
	minimalConfig.SyncCommitteeSize = 32

	// Time parameters
	minimalConfig.SlotsPerEpoch = 8

	// State vector lengths
	minimalConfig.EpochsPerHistoricalVector = 64
	minimalConfig.SlotsPerHistoricalRoot = 64

	// Fork schedule
	minimalConfig.GenesisForkVersion = []byte{0, 0, 0, 1}
	minimalConfig.AltairForkVersion = []byte{1, 0, 0, 1}
	minimalConfig.AltairForkEpoch = farFuture
	minimalConfig.BellatrixForkVersion = []byte{2, 0, 0, 1}
	minimalConfig.BellatrixForkEpoch = farFuture
	minimalConfig.CapellaForkVersion = []byte{3, 0, 0, 1}
	minimalConfig.CapellaForkEpoch = farFuture
	minimalConfig.DenebForkVersion = []byte{4, 0, 0, 1}
	minimalConfig.DenebForkEpoch = farFuture

	return minimalConfig
}
