package structs

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/blockrewards/api/server"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

func (s *BeaconState) ToConsensus() (*containers.BeaconStateData, error) {
	if s == nil {
		return nil, errNilValue
	}
	slot, err := parseUint(s.Slot)
	if err != nil {
		return nil, server.NewDecodeError(err, "Slot")
	}
	gvr, err := decodeHexWithLength(s.GenesisValidatorsRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "GenesisValidatorsRoot")
	}
	vals := make([]*containers.Validator, len(s.Validators))
	for i, v := range s.Validators {
		vals[i], err = v.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("Validators[%d]", i))
		}
	}
	blockRoots, err := decodeRoots(s.BlockRoots)
	if err != nil {
		return nil, server.NewDecodeError(err, "BlockRoots")
	}
	randaoMixes, err := decodeRoots(s.RandaoMixes)
	if err != nil {
		return nil, server.NewDecodeError(err, "RandaoMixes")
	}
	prevParticipation, err := decodeParticipation(s.PreviousEpochParticipation)
	if err != nil {
		return nil, server.NewDecodeError(err, "PreviousEpochParticipation")
	}
	currParticipation, err := decodeParticipation(s.CurrentEpochParticipation)
	if err != nil {
		return nil, server.NewDecodeError(err, "CurrentEpochParticipation")
	}
	var prevJustified, currJustified *containers.Checkpoint
	if s.PreviousJustifiedCheckpoint != nil {
		prevJustified, err = s.PreviousJustifiedCheckpoint.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, "PreviousJustifiedCheckpoint")
		}
	}
	if s.CurrentJustifiedCheckpoint != nil {
		currJustified, err = s.CurrentJustifiedCheckpoint.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, "CurrentJustifiedCheckpoint")
		}
	}
	return &containers.BeaconStateData{
		Slot:                        primitives.Slot(slot),
		GenesisValidatorsRoot:       gvr,
		Validators:                  vals,
		BlockRoots:                  blockRoots,
		RandaoMixes:                 randaoMixes,
		PreviousEpochParticipation:  prevParticipation,
		CurrentEpochParticipation:   currParticipation,
		PreviousJustifiedCheckpoint: prevJustified,
		CurrentJustifiedCheckpoint:  currJustified,
	}, nil
}

func (v *Validator) ToConsensus() (*containers.Validator, error) {
	if v == nil {
		return nil, errNilValue
	}
	pubkey, err := decodeHexWithLength(v.Pubkey, pubkeyLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Pubkey")
	}
	creds, err := decodeHexWithLength(v.WithdrawalCredentials, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "WithdrawalCredentials")
	}
	effectiveBalance, err := parseUint(v.EffectiveBalance)
	if err != nil {
		return nil, server.NewDecodeError(err, "EffectiveBalance")
	}
	eligibility, err := parseUint(v.ActivationEligibilityEpoch)
	if err != nil {
		return nil, server.NewDecodeError(err, "ActivationEligibilityEpoch")
	}
	activation, err := parseUint(v.ActivationEpoch)
	if err != nil {
		return nil, server.NewDecodeError(err, "ActivationEpoch")
	}
	exit, err := parseUint(v.ExitEpoch)
	if err != nil {
		return nil, server.NewDecodeError(err, "ExitEpoch")
	}
	withdrawable, err := parseUint(v.WithdrawableEpoch)
	if err != nil {
		return nil, server.NewDecodeError(err, "WithdrawableEpoch")
	}
	return &containers.Validator{
		PublicKey:                  pubkey,
		WithdrawalCredentials:      creds,
		EffectiveBalance:           effectiveBalance,
		Slashed:                    v.Slashed,
		ActivationEligibilityEpoch: primitives.Epoch(eligibility),
		ActivationEpoch:            primitives.Epoch(activation),
		ExitEpoch:                  primitives.Epoch(exit),
		WithdrawableEpoch:          primitives.Epoch(withdrawable),
	}, nil
}

func BeaconStateFromConsensus(s *containers.BeaconStateData) *BeaconState {
	if s == nil {
		return nil
	}
	vals := make([]*Validator, len(s.Validators))
	for i, v := range s.Validators {
		vals[i] = ValidatorFromConsensus(v)
	}
	return &BeaconState{
		Slot:                        formatUint(uint64(s.Slot)),
		GenesisValidatorsRoot:       hexutil.Encode(s.GenesisValidatorsRoot),
		Validators:                  vals,
		BlockRoots:                  encodeRoots(s.BlockRoots),
		RandaoMixes:                 encodeRoots(s.RandaoMixes),
		PreviousEpochParticipation:  encodeParticipation(s.PreviousEpochParticipation),
		CurrentEpochParticipation:   encodeParticipation(s.CurrentEpochParticipation),
		PreviousJustifiedCheckpoint: CheckpointFromConsensus(s.PreviousJustifiedCheckpoint),
		CurrentJustifiedCheckpoint:  CheckpointFromConsensus(s.CurrentJustifiedCheckpoint),
	}
}

func ValidatorFromConsensus(v *containers.Validator) *Validator {
	if v == nil {
		return nil
	}
	return &Validator{
		Pubkey:                     hexutil.Encode(v.PublicKey),
		WithdrawalCredentials:      hexutil.Encode(v.WithdrawalCredentials),
		EffectiveBalance:           formatUint(v.EffectiveBalance),
		Slashed:                    v.Slashed,
		ActivationEligibilityEpoch: formatUint(uint64(v.ActivationEligibilityEpoch)),
		ActivationEpoch:            formatUint(uint64(v.ActivationEpoch)),
		ExitEpoch:                  formatUint(uint64(v.ExitEpoch)),
		WithdrawableEpoch:          formatUint(uint64(v.WithdrawableEpoch)),
	}
}

func decodeRoots(roots []string) ([][]byte, error) {
	decoded := make([][]byte, len(roots))
	for i, r := range roots {
		b, err := decodeHexWithLength(r, rootLength)
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("[%d]", i))
		}
		decoded[i] = b
	}
	return decoded, nil
}

func encodeRoots(roots [][]byte) []string {
	encoded := make([]string, len(roots))
	for i, r := range roots {
		encoded[i] = hexutil.Encode(r)
	}
	return encoded
}

func decodeParticipation(p []string) ([]byte, error) {
	decoded := make([]byte, len(p))
	for i, flags := range p {
		f, err := strconv.ParseUint(flags, 10, 8)
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("[%d]", i))
		}
		decoded[i] = byte(f)
	}
	return decoded, nil
}

func encodeParticipation(p []byte) []string {
	encoded := make([]string, len(p))
	for i, f := range p {
		encoded[i] = strconv.FormatUint(uint64(f), 10)
	}
	return encoded
}
