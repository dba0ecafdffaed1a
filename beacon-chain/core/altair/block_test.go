package altair_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/core/altair"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	"github.com/prysmaticlabs/blockrewards/testing/util"
)

func TestSyncRewards(t *testing.T) {
	tests := []struct {
		name                  string
		activeBalance         uint64
		wantParticipantReward uint64
		wantProposerReward    uint64
		errString             string
	}{
		{
			name:          "active balance is 0",
			activeBalance: 0,
			errString:     "active balance can't be 0",
		},
		{
			name:                  "active balance is 1",
			activeBalance:         1,
			wantParticipantReward: 0,
			wantProposerReward:    0,
		},
		{
			name:                  "active balance is 1eth",
			activeBalance:         params.BeaconConfig().EffectiveBalanceIncrement,
			wantParticipantReward: 3,
			wantProposerReward:    0,
		},
		{
			name:                  "active balance is 32eth",
			activeBalance:         params.BeaconConfig().MaxEffectiveBalance,
			wantParticipantReward: 21,
			wantProposerReward:    3,
		},
		{
			name:                  "active balance is 32eth * target committee size",
			activeBalance:         params.BeaconConfig().MaxEffectiveBalance * params.BeaconConfig().TargetCommitteeSize,
			wantParticipantReward: 247,
			wantProposerReward:    35,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantReward, proposerReward, err := altair.SyncRewards(tt.activeBalance)
			if tt.errString != "" {
				require.ErrorContains(t, tt.errString, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantParticipantReward, participantReward)
			assert.Equal(t, tt.wantProposerReward, proposerReward)
		})
	}
}

func TestSyncRewards_MatchesState(t *testing.T) {
	util.SetupForkConfig(t, version.Altair)
	st := util.NewBeaconState(t, util.NewBeaconStateData(64, 10))
	_, proposerReward, err := altair.SyncRewards(64 * params.BeaconConfig().MaxEffectiveBalance)
	require.NoError(t, err)
	assert.Equal(t, uint64(1597), proposerReward)
	assert.Equal(t, proposerReward, st.SyncProposerReward())
}

func TestValidatorFlag_Has(t *testing.T) {
	tests := []struct {
		name     string
		set      uint8
		expected []uint8
	}{
		{name: "none",
			set:      0,
			expected: []uint8{},
		},
		{
			name:     "source",
			set:      1,
			expected: []uint8{params.BeaconConfig().TimelySourceFlagIndex},
		},
		{
			name:     "target",
			set:      2,
			expected: []uint8{params.BeaconConfig().TimelyTargetFlagIndex},
		},
		{
			name:     "head",
			set:      4,
			expected: []uint8{params.BeaconConfig().TimelyHeadFlagIndex},
		},
		{
			name:     "source, target",
			set:      3,
			expected: []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex},
		},
		{
			name:     "source, target, head",
			set:      7,
			expected: []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex, params.BeaconConfig().TimelyHeadFlagIndex},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, f := range tt.expected {
				assert.Equal(t, true, altair.HasValidatorFlag(tt.set, f))
			}
		})
	}
}

func TestValidatorFlag_Add(t *testing.T) {
	tests := []struct {
		name          string
		set           []uint8
		expectedTrue  []uint8
		expectedFalse []uint8
	}{
		{name: "none",
			set:           []uint8{},
			expectedTrue:  []uint8{},
			expectedFalse: []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex, params.BeaconConfig().TimelyHeadFlagIndex},
		},
		{
			name:          "source",
			set:           []uint8{params.BeaconConfig().TimelySourceFlagIndex},
			expectedTrue:  []uint8{params.BeaconConfig().TimelySourceFlagIndex},
			expectedFalse: []uint8{params.BeaconConfig().TimelyTargetFlagIndex, params.BeaconConfig().TimelyHeadFlagIndex},
		},
		{
			name:          "source, target",
			set:           []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex},
			expectedTrue:  []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex},
			expectedFalse: []uint8{params.BeaconConfig().TimelyHeadFlagIndex},
		},
		{
			name:          "source, target, head",
			set:           []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex, params.BeaconConfig().TimelyHeadFlagIndex},
			expectedTrue:  []uint8{params.BeaconConfig().TimelySourceFlagIndex, params.BeaconConfig().TimelyTargetFlagIndex, params.BeaconConfig().TimelyHeadFlagIndex},
			expectedFalse: []uint8{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := uint8(0)
			for _, f := range tt.set {
				b = altair.AddValidatorFlag(b, f)
			}
			for _, f := range tt.expectedFalse {
				assert.Equal(t, false, altair.HasValidatorFlag(b, f))
			}
			for _, f := range tt.expectedTrue {
				assert.Equal(t, true, altair.HasValidatorFlag(b, f))
			}
		})
	}
}
