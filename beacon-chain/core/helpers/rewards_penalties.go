package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/blockrewards/math"
)

// ErrZeroActiveBalance is returned when a base reward is requested against an empty active balance.
var ErrZeroActiveBalance = errors.New("active balance can't be 0")

// TotalActiveBalance returns the total amount at stake in Gwei
// of active validators.
//
// Pseudocode definition:
//
//	def get_total_active_balance(state: BeaconState) -> Gwei:
//	  """
//	  Return the combined effective balance of the active validators.
//	  Note: ``get_total_balance`` returns ``EFFECTIVE_BALANCE_INCREMENT`` Gwei minimum to avoid divisions by zero.
//	  """
//	  return get_total_balance(state, set(get_active_validator_indices(state, get_current_epoch(state))))
func TotalActiveBalance(st state.ReadOnlyBeaconState) (uint64, error) {
	total := uint64(0)
	epoch := CurrentEpoch(st)
	if err := st.ReadFromEveryValidator(func(idx int, val state.ReadOnlyValidator) error {
		if IsActiveValidator(val, epoch) {
			var err error
			total, err = mathutil.Add64(total, val.EffectiveBalance())
			if err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	// EffectiveBalanceIncrement is the floor to avoid divisions by zero.
	if total < params.BeaconConfig().EffectiveBalanceIncrement {
		return params.BeaconConfig().EffectiveBalanceIncrement, nil
	}
	return total, nil
}

// BaseReward takes state and validator index and calculate
// individual validator's base reward.
//
// Pseudocode definition:
//
//	def get_base_reward(state: BeaconState, index: ValidatorIndex) -> Gwei:
//	  """
//	  Return the base reward for the validator defined by ``index`` with respect to the current ``state``.
//	  """
//	  increments = state.validators[index].effective_balance // EFFECTIVE_BALANCE_INCREMENT
//	  return Gwei(increments * get_base_reward_per_increment(state))
func BaseReward(st state.ReadOnlyBeaconState, index primitives.ValidatorIndex) (uint64, error) {
	totalBalance, err := TotalActiveBalance(st)
	if err != nil {
		return 0, errors.Wrap(err, "could not calculate active balance")
	}
	return BaseRewardWithTotalBalance(st, index, totalBalance)
}

// BaseRewardWithTotalBalance calculates the base reward with the provided total balance.
func BaseRewardWithTotalBalance(st state.ReadOnlyBeaconState, index primitives.ValidatorIndex, totalBalance uint64) (uint64, error) {
	effectiveBalance, err := st.EffectiveBalanceAtIndex(index)
	if err != nil {
		return 0, err
	}
	baseRewardPerInc, err := BaseRewardPerIncrement(totalBalance)
	if err != nil {
		return 0, err
	}
	increments := effectiveBalance / params.BeaconConfig().EffectiveBalanceIncrement
	return mathutil.Mul64(increments, baseRewardPerInc)
}

// BaseRewardPerIncrement of the beacon state
//
// Pseudocode definition:
//
//	def get_base_reward_per_increment(state: BeaconState) -> Gwei:
//	  return Gwei(EFFECTIVE_BALANCE_INCREMENT * BASE_REWARD_FACTOR // integer_squareroot(get_total_active_balance(state)))
func BaseRewardPerIncrement(activeBalance uint64) (uint64, error) {
	if activeBalance == 0 {
		return 0, ErrZeroActiveBalance
	}
	cfg := params.BeaconConfig()
	return cfg.EffectiveBalanceIncrement * cfg.BaseRewardFactor / mathutil.IntegerSquareRoot(activeBalance), nil
}
