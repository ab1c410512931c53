package seedstore

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/danmuck/hexmutator/internal/protocol"
)

const DefaultIDMapCapacity = 4096

// SeedIDMap remembers the most recent correlation id assigned to each seed
// text. It is bounded; the least recently written seeds fall out first.
type SeedIDMap struct {
	cache *lru.Cache[string, protocol.CorrelationID]
}

func NewSeedIDMap(capacity int) *SeedIDMap {
	if capacity <= 0 {
		capacity = DefaultIDMapCapacity
	}
	cache, err := lru.New[string, protocol.CorrelationID](capacity)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &SeedIDMap{cache: cache}
}

// Record stores id for seed, replacing any earlier id.
func (m *SeedIDMap) Record(seed string, id protocol.CorrelationID) {
	m.cache.Add(seed, id)
}

func (m *SeedIDMap) Lookup(seed string) (protocol.CorrelationID, bool) {
	return m.cache.Peek(seed)
}

func (m *SeedIDMap) Len() int {
	return m.cache.Len()
}
