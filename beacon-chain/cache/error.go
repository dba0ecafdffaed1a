package cache

import "errors"

var (
	// ErrNotFound for cache fetches that return a nil value.
	ErrNotFound = errors.New("not found in cache")
	// ErrNotCommittee will be returned when a cache object is not a pointer to
	// a Committee struct.
	ErrNotCommittee = errors.New("object is not a committee struct")
	// ErrNotBlockRewards will be returned when a cache object is not a pointer to
	// a block rewards response.
	ErrNotBlockRewards = errors.New("object is not a block rewards response")
	// ErrCacheCannotBeNil is returned when the underlying lru cannot be created.
	ErrCacheCannotBeNil = errors.New("cache cannot be nil")
	errIndexOutOfBound  = errors.New("requested index out of bound")
)
