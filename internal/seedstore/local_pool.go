package seedstore

import (
	"math/rand"
	"sync"
	"time"
)

// LocalSeedPool is the ordered set of mutation sources used when the fuzzer
// has nothing pending. When full, it restarts with only the newest seed.
type LocalSeedPool struct {
	mu       sync.Mutex
	capacity int
	items    []string
	rng      *rand.Rand
	resets   uint64
}

func NewLocalSeedPool(capacity int, initial ...string) *LocalSeedPool {
	return NewLocalSeedPoolWithRand(capacity, rand.New(rand.NewSource(time.Now().UnixNano())), initial...)
}

func NewLocalSeedPoolWithRand(capacity int, rng *rand.Rand, initial ...string) *LocalSeedPool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &LocalSeedPool{
		capacity: capacity,
		items:    make([]string, 0, capacity),
		rng:      rng,
	}
	for _, seed := range initial {
		p.Offer(seed)
	}
	return p
}

// Offer appends seed and reports whether the pool was restarted first.
func (p *LocalSeedPool) Offer(seed string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	reset := false
	if len(p.items) >= p.capacity {
		p.items = make([]string, 0, p.capacity)
		p.resets++
		reset = true
	}
	p.items = append(p.items, seed)
	return reset
}

// PickRandom returns a uniformly chosen seed without removing it.
func (p *LocalSeedPool) PickRandom() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) == 0 {
		return "", false
	}
	return p.items[p.rng.Intn(len(p.items))], true
}

// Snapshot returns a copy of the pool in insertion order.
func (p *LocalSeedPool) Snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

func (p *LocalSeedPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

func (p *LocalSeedPool) Resets() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resets
}
