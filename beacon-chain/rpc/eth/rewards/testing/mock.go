package testing

import (
	"context"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/eth/rewards"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/consensus-types/interfaces"
)

// MockBlockRewardFetcher returns canned rewards and records how often it was called.
type MockBlockRewardFetcher struct {
	Rewards *rewards.BlockRewards
	Error   error
	Calls   int
}

func (m *MockBlockRewardFetcher) GetBlockRewardsData(_ context.Context, _ interfaces.ReadOnlyBeaconBlock, _ state.ReadOnlyBeaconState) (*rewards.BlockRewards, error) {
	m.Calls++
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Rewards, nil
}
