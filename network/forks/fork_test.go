package forks

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/config/params"
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestSchedule_VersionAtEpoch(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	cfg := params.MainnetConfig()
	params.OverrideBeaconConfig(cfg)
	s := NewSchedule(cfg)

	tests := []struct {
		name  string
		epoch types.Epoch
		want  int
	}{
		{name: "genesis", epoch: 0, want: version.Phase0},
		{name: "last phase0 epoch", epoch: cfg.AltairForkEpoch - 1, want: version.Phase0},
		{name: "altair", epoch: cfg.AltairForkEpoch, want: version.Altair},
		{name: "bellatrix", epoch: cfg.BellatrixForkEpoch + 1, want: version.Bellatrix},
		{name: "capella", epoch: cfg.CapellaForkEpoch, want: version.Capella},
		{name: "deneb", epoch: cfg.DenebForkEpoch + 1000, want: version.Deneb},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.VersionAtEpoch(tt.epoch)
			require.NoError(t, err)
			assert.Equal(t, version.String(tt.want), version.String(got))
		})
	}
}

func TestSchedule_VersionAtSlot(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	cfg := params.MainnetConfig()
	params.OverrideBeaconConfig(cfg)
	s := BeaconSchedule()

	start := types.Slot(uint64(cfg.AltairForkEpoch) * uint64(cfg.SlotsPerEpoch))
	v, err := s.VersionAtSlot(start - 1)
	require.NoError(t, err)
	assert.Equal(t, version.Phase0, v)
	v, err = s.VersionAtSlot(start)
	require.NoError(t, err)
	assert.Equal(t, version.Altair, v)
}

func TestSchedule_FarFutureForksInactive(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	cfg.AltairForkEpoch = 2
	s := NewSchedule(cfg)
	assert.Equal(t, 2, len(s.Entries()))

	v, err := s.VersionAtEpoch(cfg.FarFutureEpoch)
	require.NoError(t, err)
	assert.Equal(t, version.Altair, v)
}

func TestSchedule_Empty(t *testing.T) {
	var s *Schedule
	_, err := s.VersionAtEpoch(0)
	assert.ErrorContains(t, "no entries", err)
}
