package seedstore

import "sync"

const DefaultCapacity = 30

// FuzzerSeedCache is a bounded set of seeds recently supplied by the fuzzer.
// When full, the next new seed clears the whole set before being inserted.
type FuzzerSeedCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]struct{}
	resets   uint64
}

func NewFuzzerSeedCache(capacity int) *FuzzerSeedCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FuzzerSeedCache{
		capacity: capacity,
		items:    make(map[string]struct{}, capacity),
	}
}

// Offer inserts seed and reports whether the cache was reset to make room.
// Offering a seed that is already present is a no-op.
func (c *FuzzerSeedCache) Offer(seed string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[seed]; ok {
		return false
	}
	reset := false
	if len(c.items) >= c.capacity {
		clear(c.items)
		c.resets++
		reset = true
	}
	c.items[seed] = struct{}{}
	return reset
}

// TakeOne removes and returns an arbitrary member.
func (c *FuzzerSeedCache) TakeOne() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for seed := range c.items {
		delete(c.items, seed)
		return seed, true
	}
	return "", false
}

func (c *FuzzerSeedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *FuzzerSeedCache) Contains(seed string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[seed]
	return ok
}

func (c *FuzzerSeedCache) Resets() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}
