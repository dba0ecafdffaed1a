// Package forks maps slots and epochs onto the fork active at that point of the chain.
package forks

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/config/params"
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/runtime/version"
	"github.com/prysmaticlabs/blockrewards/time/slots"
)

var errNoForks = errors.New("fork schedule has no entries")

// ForkScheduleEntry pairs a fork version with the epoch it activates at.
type ForkScheduleEntry struct {
	Epoch   types.Epoch
	Version int
}

// Schedule is an ordered list of fork activations, earliest first.
type Schedule struct {
	entries []ForkScheduleEntry
}

// NewSchedule builds the fork schedule described by the given config. Forks scheduled at
// the far future epoch are left out, as are forks that precede the genesis fork in ordering.
func NewSchedule(cfg *params.BeaconChainConfig) *Schedule {
	entries := []ForkScheduleEntry{{Epoch: cfg.GenesisEpoch, Version: version.Phase0}}
	for _, e := range []ForkScheduleEntry{
		{Epoch: cfg.AltairForkEpoch, Version: version.Altair},
		{Epoch: cfg.BellatrixForkEpoch, Version: version.Bellatrix},
		{Epoch: cfg.CapellaForkEpoch, Version: version.Capella},
		{Epoch: cfg.DenebForkEpoch, Version: version.Deneb},
	} {
		if e.Epoch == cfg.FarFutureEpoch {
			continue
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Epoch == entries[j].Epoch {
			return entries[i].Version < entries[j].Version
		}
		return entries[i].Epoch < entries[j].Epoch
	})
	return &Schedule{entries: entries}
}

// BeaconSchedule returns the schedule of the currently configured beacon chain.
func BeaconSchedule() *Schedule {
	return NewSchedule(params.BeaconConfig())
}

// VersionAtEpoch returns the latest fork version activated at or before epoch.
func (s *Schedule) VersionAtEpoch(epoch types.Epoch) (int, error) {
	if s == nil || len(s.entries) == 0 {
		return 0, errNoForks
	}
	v := s.entries[0].Version
	for _, e := range s.entries {
		if e.Epoch > epoch {
			break
		}
		v = e.Version
	}
	return v, nil
}

// VersionAtSlot returns the fork version active at slot.
func (s *Schedule) VersionAtSlot(slot types.Slot) (int, error) {
	return s.VersionAtEpoch(slots.ToEpoch(slot))
}

// Entries returns a copy of the schedule.
func (s *Schedule) Entries() []ForkScheduleEntry {
	entries := make([]ForkScheduleEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
