package seedstore

// DefaultOutboundLimit bounds seeds pending while the fuzzer sends no REQUEST.
const DefaultOutboundLimit = 1024

// Config sizes the shared seed structures.
type Config struct {
	FuzzerCacheCapacity int
	LocalPoolCapacity   int
	OutboundLimit       int
	IDMapCapacity       int
}

func DefaultConfig() Config {
	return Config{
		FuzzerCacheCapacity: DefaultCapacity,
		LocalPoolCapacity:   DefaultCapacity,
		OutboundLimit:       DefaultOutboundLimit,
		IDMapCapacity:       DefaultIDMapCapacity,
	}
}

// Store bundles the shared structures handed to both loops.
type Store struct {
	Fuzzer   *FuzzerSeedCache
	Pool     *LocalSeedPool
	Outbound *OutboundQueue
	IDs      *SeedIDMap
}

// Stats is a point-in-time view of store sizes and overflow counters.
type Stats struct {
	FuzzerSeeds     int    `json:"fuzzer_seeds"`
	FuzzerResets    uint64 `json:"fuzzer_resets"`
	PoolSeeds       int    `json:"pool_seeds"`
	PoolResets      uint64 `json:"pool_resets"`
	OutboundPending int    `json:"outbound_pending"`
	OutboundDropped uint64 `json:"outbound_dropped"`
	TrackedIDs      int    `json:"tracked_ids"`
}

func New(cfg Config, initial ...string) *Store {
	return NewWithPool(cfg, NewLocalSeedPool(cfg.LocalPoolCapacity, initial...))
}

// NewWithPool uses an externally built pool, e.g. one with a fixed random source.
func NewWithPool(cfg Config, pool *LocalSeedPool) *Store {
	return &Store{
		Fuzzer:   NewFuzzerSeedCache(cfg.FuzzerCacheCapacity),
		Pool:     pool,
		Outbound: NewOutboundQueue(cfg.OutboundLimit),
		IDs:      NewSeedIDMap(cfg.IDMapCapacity),
	}
}

func (s *Store) Stats() Stats {
	return Stats{
		FuzzerSeeds:     s.Fuzzer.Len(),
		FuzzerResets:    s.Fuzzer.Resets(),
		PoolSeeds:       s.Pool.Len(),
		PoolResets:      s.Pool.Resets(),
		OutboundPending: s.Outbound.Len(),
		OutboundDropped: s.Outbound.Dropped(),
		TrackedIDs:      s.IDs.Len(),
	}
}
