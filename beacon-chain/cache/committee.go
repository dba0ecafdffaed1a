package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/container/slice"
	mathutil "github.com/prysmaticlabs/blockrewards/math"
)

const (
	// maxCommitteesCacheSize defines the max number of shuffled committees on per randao basis can cache.
	// Due to reorgs and long finality, it's good to keep the old cache around for quickly switch over.
	maxCommitteesCacheSize = int(32)
)

var (
	// CommitteeCacheMiss tracks the number of committee requests that aren't present in the cache.
	CommitteeCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "committee_cache_miss",
		Help: "The number of committee requests that aren't present in the cache.",
	})
	// CommitteeCacheHit tracks the number of committee requests that are in the cache.
	CommitteeCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "committee_cache_hit",
		Help: "The number of committee requests that are present in the cache.",
	})
)

// Committees defines the shuffled committees seed.
type Committees struct {
	CommitteeCount  uint64
	Seed            [32]byte
	ShuffledIndices []primitives.ValidatorIndex
	SortedIndices   []primitives.ValidatorIndex
}

// CommitteeCache is a struct with 1 queue for looking up shuffled indices list by seed.
type CommitteeCache struct {
	CommitteeCache *lru.Cache
	lock           sync.RWMutex
}

// committeeKeyFn takes the seed as the key to retrieve shuffled indices of a committee in a given epoch.
func committeeKeyFn(obj interface{}) (string, error) {
	info, ok := obj.(*Committees)
	if !ok {
		return "", ErrNotCommittee
	}
	return committeeCacheKey(info.Seed), nil
}

func committeeCacheKey(seed [32]byte) string {
	return string(seed[:])
}

// NewCommitteesCache creates a new committee cache for storing/accessing shuffled indices of a committee.
func NewCommitteesCache() (*CommitteeCache, error) {
	cache, err := lru.New(maxCommitteesCacheSize)
	if err != nil {
		return nil, errors.Wrap(ErrCacheCannotBeNil, err.Error())
	}
	return &CommitteeCache{CommitteeCache: cache}, nil
}

// Committee fetches the shuffled indices by slot and committee index. Every list of indices
// represent one committee. Returns nil if the seed is not in the cache.
func (c *CommitteeCache) Committee(ctx context.Context, slot primitives.Slot, seed [32]byte, index primitives.CommitteeIndex) ([]primitives.ValidatorIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := c.get(seed)
	if err != nil || item == nil {
		return nil, err
	}

	committeeCountPerSlot := uint64(1)
	spe := uint64(params.BeaconConfig().SlotsPerEpoch)
	if item.CommitteeCount/spe > 1 {
		committeeCountPerSlot = item.CommitteeCount / spe
	}

	indexOffSet, err := mathutil.Add64(uint64(index), uint64(slot.Mod(spe))*committeeCountPerSlot)
	if err != nil {
		return nil, err
	}
	start, end := startEndIndices(item, indexOffSet)
	if end > uint64(len(item.ShuffledIndices)) || end < start {
		return nil, errIndexOutOfBound
	}
	return item.ShuffledIndices[start:end], nil
}

// AddCommitteeShuffledList adds Committee shuffled list object to the cache. This method
// also trims the least recently used list if the cache size has reached the max cache size limit.
func (c *CommitteeCache) AddCommitteeShuffledList(ctx context.Context, committees *Committees) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := committeeKeyFn(committees)
	if err != nil {
		return err
	}
	cp := &Committees{
		CommitteeCount:  committees.CommitteeCount,
		Seed:            committees.Seed,
		ShuffledIndices: copyIndices(committees.ShuffledIndices),
		SortedIndices:   copyIndices(committees.SortedIndices),
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.CommitteeCache.Add(key, cp)
	return nil
}

// ActiveIndices returns the active indices of a given seed stored in cache.
func (c *CommitteeCache) ActiveIndices(ctx context.Context, seed [32]byte) ([]primitives.ValidatorIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := c.get(seed)
	if err != nil || item == nil {
		return nil, err
	}
	return item.SortedIndices, nil
}

// ShuffledIndices returns the full shuffled list of a given seed stored in cache.
func (c *CommitteeCache) ShuffledIndices(ctx context.Context, seed [32]byte) ([]primitives.ValidatorIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := c.get(seed)
	if err != nil || item == nil {
		return nil, err
	}
	return item.ShuffledIndices, nil
}

// Clear resets the committee cache to its initial state.
func (c *CommitteeCache) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.CommitteeCache.Purge()
}

func (c *CommitteeCache) get(seed [32]byte) (*Committees, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	obj, exists := c.CommitteeCache.Get(committeeCacheKey(seed))
	if !exists {
		CommitteeCacheMiss.Inc()
		return nil, nil
	}
	CommitteeCacheHit.Inc()
	item, ok := obj.(*Committees)
	if !ok {
		return nil, ErrNotCommittee
	}
	return item, nil
}

func (c *CommitteeCache) keys() []string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	raw := c.CommitteeCache.Keys()
	k := make([]string, 0, len(raw))
	for _, key := range raw {
		if s, ok := key.(string); ok {
			k = append(k, s)
		}
	}
	return k
}

func startEndIndices(c *Committees, index uint64) (uint64, uint64) {
	validatorCount := uint64(len(c.ShuffledIndices))
	start := slice.SplitOffset(validatorCount, c.CommitteeCount, index)
	end := slice.SplitOffset(validatorCount, c.CommitteeCount, index+1)
	return start, end
}

func copyIndices(indices []primitives.ValidatorIndex) []primitives.ValidatorIndex {
	if indices == nil {
		return nil
	}
	cp := make([]primitives.ValidatorIndex, len(indices))
	copy(cp, indices)
	return cp
}
