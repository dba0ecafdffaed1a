package structs

// BeaconState is the JSON form of the parts of a beacon state read by reward accounting.
type BeaconState struct {
	Slot                        string       `json:"slot"`
	GenesisValidatorsRoot       string       `json:"genesis_validators_root"`
	Validators                  []*Validator `json:"validators"`
	BlockRoots                  []string     `json:"block_roots"`
	RandaoMixes                 []string     `json:"randao_mixes"`
	PreviousEpochParticipation  []string     `json:"previous_epoch_participation"`
	CurrentEpochParticipation   []string     `json:"current_epoch_participation"`
	PreviousJustifiedCheckpoint *Checkpoint  `json:"previous_justified_checkpoint"`
	CurrentJustifiedCheckpoint  *Checkpoint  `json:"current_justified_checkpoint"`
}

type Validator struct {
	Pubkey                     string `json:"pubkey"`
	WithdrawalCredentials      string `json:"withdrawal_credentials"`
	EffectiveBalance           string `json:"effective_balance"`
	Slashed                    bool   `json:"slashed"`
	ActivationEligibilityEpoch string `json:"activation_eligibility_epoch"`
	ActivationEpoch            string `json:"activation_epoch"`
	ExitEpoch                  string `json:"exit_epoch"`
	WithdrawableEpoch          string `json:"withdrawable_epoch"`
}

// GetBeaconStateV2Response mirrors the beacon API debug state response.
type GetBeaconStateV2Response struct {
	Version             string       `json:"version"`
	ExecutionOptimistic bool         `json:"execution_optimistic"`
	Finalized           bool         `json:"finalized"`
	Data                *BeaconState `json:"data"`
}
