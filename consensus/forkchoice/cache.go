package forkchoice

import (
	types "github.com/cbc-casper/casper/consensus-types/primitives"
	lru "github.com/hashicorp/golang-lru"
)

type chainKey struct {
	from  types.MessageID
	block types.MessageID
}

// chainCache remembers whether block lies on the estimate chain of from.
// Messages never change once stored, so entries never go stale.
type chainCache struct {
	lru *lru.Cache
}

// newChainCache returns nil when size is not positive, which disables caching.
func newChainCache(size int) *chainCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New(size)
	if err != nil {
		log.WithError(err).Error("Could not create estimate chain cache")
		return nil
	}
	return &chainCache{lru: c}
}

func (c *chainCache) get(from, block types.MessageID) (onChain, ok bool) {
	if c == nil {
		return false, false
	}
	v, ok := c.lru.Get(chainKey{from: from, block: block})
	if !ok {
		chainCacheMiss.Inc()
		return false, false
	}
	chainCacheHit.Inc()
	return v.(bool), true
}

func (c *chainCache) add(from, block types.MessageID, onChain bool) {
	if c == nil {
		return
	}
	c.lru.Add(chainKey{from: from, block: block}, onChain)
}

func (c *chainCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
