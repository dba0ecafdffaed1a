package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
)

// maxBlockRewardsCacheSize is the number of block reward responses kept in memory. Reward
// responses are small, so a few epochs worth of blocks are retained.
const maxBlockRewardsCacheSize = int(256)

var (
	blockRewardsCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "block_rewards_cache_miss",
		Help: "The number of block reward requests that aren't present in the cache.",
	})
	blockRewardsCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "block_rewards_cache_hit",
		Help: "The number of block reward requests that are present in the cache.",
	})
)

// BlockRewardsCache stores computed block reward responses keyed by block root.
type BlockRewardsCache struct {
	cache *lru.Cache
	lock  sync.RWMutex
}

// NewBlockRewardsCache creates a new block rewards cache.
func NewBlockRewardsCache() (*BlockRewardsCache, error) {
	cache, err := lru.New(maxBlockRewardsCacheSize)
	if err != nil {
		return nil, errors.Wrap(ErrCacheCannotBeNil, err.Error())
	}
	return &BlockRewardsCache{cache: cache}, nil
}

// Get returns the cached rewards of the block with the given root. ErrNotFound is returned when
// the block is not cached.
func (c *BlockRewardsCache) Get(root [32]byte) (*structs.BlockRewards, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	item, exists := c.cache.Get(root)
	if !exists {
		blockRewardsCacheMiss.Inc()
		return nil, ErrNotFound
	}
	blockRewardsCacheHit.Inc()
	rewards, ok := item.(*structs.BlockRewards)
	if !ok {
		return nil, ErrNotBlockRewards
	}
	cp := *rewards
	return &cp, nil
}

// Put stores the rewards of the block with the given root.
func (c *BlockRewardsCache) Put(root [32]byte, rewards *structs.BlockRewards) {
	if rewards == nil {
		return
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	cp := *rewards
	c.cache.Add(root, &cp)
}

// Len returns the number of cached entries.
func (c *BlockRewardsCache) Len() int {
	return c.cache.Len()
}

// Clear purges all cached entries.
func (c *BlockRewardsCache) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cache.Purge()
}
