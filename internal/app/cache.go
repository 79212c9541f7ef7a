package service

import (
	"sync"
	"sync/atomic"

	"github.com/okian/seograde/internal/domain/model"
)

// resultCache memoizes scores for identical drafts. Eviction is FIFO:
// scoring is deterministic, so recency carries no information and the
// oldest entry is as good a victim as any. A non-positive maxSize
// disables the bound.
type resultCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]model.SEOScore
	order   []string

	hitCount  atomic.Int64
	missCount atomic.Int64
}

func newResultCache(maxSize int) *resultCache {
	return &resultCache{
		maxSize: maxSize,
		entries: make(map[string]model.SEOScore),
	}
}

func (c *resultCache) get(key string) (model.SEOScore, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	score, ok := c.entries[key]
	if ok {
		c.hitCount.Add(1)
	} else {
		c.missCount.Add(1)
	}
	return score, ok
}

func (c *resultCache) put(key string, score model.SEOScore) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}
	if c.maxSize > 0 {
		for len(c.entries) >= c.maxSize && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
	}
	c.entries[key] = score
	c.order = append(c.order, key)
}

func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *resultCache) hits() int64 { return c.hitCount.Load() }

func (c *resultCache) misses() int64 { return c.missCount.Load() }
