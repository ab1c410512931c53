package seedstore

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/danmuck/hexmutator/internal/protocol"
	"github.com/danmuck/hexmutator/internal/testutil/testlog"
)

func TestFuzzerSeedCacheResetsOnOverflow(t *testing.T) {
	testlog.Start(t)
	c := NewFuzzerSeedCache(30)
	for i := 0; i < 30; i++ {
		if reset := c.Offer(fmt.Sprintf("%04x", i)); reset {
			t.Fatalf("unexpected reset at offer %d", i+1)
		}
	}
	if c.Len() != 30 {
		t.Fatalf("expected full cache, got %d", c.Len())
	}
	if reset := c.Offer("ffff"); !reset {
		t.Fatalf("31st offer should reset the cache")
	}
	if c.Len() != 1 || !c.Contains("ffff") {
		t.Fatalf("expected only the 31st seed after reset, len=%d", c.Len())
	}
	if c.Resets() != 1 {
		t.Fatalf("unexpected reset count: %d", c.Resets())
	}
}

func TestFuzzerSeedCacheDeduplicates(t *testing.T) {
	testlog.Start(t)
	c := NewFuzzerSeedCache(2)
	c.Offer("aa")
	c.Offer("bb")
	if reset := c.Offer("aa"); reset {
		t.Fatalf("re-offering a present seed must not reset")
	}
	if c.Len() != 2 {
		t.Fatalf("unexpected len: %d", c.Len())
	}
}

func TestFuzzerSeedCacheTakeOne(t *testing.T) {
	testlog.Start(t)
	c := NewFuzzerSeedCache(0)
	if _, ok := c.TakeOne(); ok {
		t.Fatalf("empty cache returned a seed")
	}
	c.Offer("aa")
	c.Offer("bb")
	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		seed, ok := c.TakeOne()
		if !ok {
			t.Fatalf("expected seed on take %d", i)
		}
		got[seed] = true
	}
	if !got["aa"] || !got["bb"] || c.Len() != 0 {
		t.Fatalf("unexpected takes: %v len=%d", got, c.Len())
	}
}

func TestLocalSeedPoolRestartsWithNewest(t *testing.T) {
	testlog.Start(t)
	p := NewLocalSeedPoolWithRand(3, rand.New(rand.NewSource(1)), "01", "02", "03")
	if reset := p.Offer("04"); !reset {
		t.Fatalf("expected restart on overflow")
	}
	snap := p.Snapshot()
	if len(snap) != 1 || snap[0] != "04" {
		t.Fatalf("unexpected pool after restart: %v", snap)
	}
}

func TestLocalSeedPoolPickRandomCoversMembers(t *testing.T) {
	testlog.Start(t)
	p := NewLocalSeedPoolWithRand(30, rand.New(rand.NewSource(42)), "aa", "bb", "cc")
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		seed, ok := p.PickRandom()
		if !ok {
			t.Fatalf("pick from non-empty pool failed")
		}
		seen[seed]++
	}
	for _, s := range []string{"aa", "bb", "cc"} {
		if seen[s] == 0 {
			t.Fatalf("seed %q never picked: %v", s, seen)
		}
	}
	if p.Len() != 3 {
		t.Fatalf("pick must not remove seeds")
	}

	empty := NewLocalSeedPool(30)
	if _, ok := empty.PickRandom(); ok {
		t.Fatalf("empty pool returned a seed")
	}
}

func TestOutboundQueueFIFO(t *testing.T) {
	testlog.Start(t)
	q := NewOutboundQueue(0)
	q.Push(PendingSeed{Seed: "s1", ID: 1}, PendingSeed{Seed: "s2", ID: 2})
	q.Push(PendingSeed{Seed: "s3", ID: 3})

	for _, want := range []string{"s1", "s2", "s3"} {
		item, ok := q.Pop()
		if !ok || item.Seed != want {
			t.Fatalf("got=%q ok=%v want=%q", item.Seed, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("queue should be empty")
	}
}

func TestOutboundQueueRequeueAndLimit(t *testing.T) {
	testlog.Start(t)
	q := NewOutboundQueue(2)
	q.Push(PendingSeed{Seed: "s1"}, PendingSeed{Seed: "s2"})
	if dropped := q.Push(PendingSeed{Seed: "s3"}); dropped != 1 {
		t.Fatalf("expected one dropped seed, got %d", dropped)
	}
	item, _ := q.Pop()
	if item.Seed != "s2" {
		t.Fatalf("oldest seed should have been dropped, got %q", item.Seed)
	}
	q.Requeue(item)
	if item, _ := q.Pop(); item.Seed != "s2" {
		t.Fatalf("requeued seed must come out first, got %q", item.Seed)
	}
	if q.Dropped() != 1 {
		t.Fatalf("unexpected dropped count: %d", q.Dropped())
	}
}

func TestOutboundQueueRequeueKeepsOrder(t *testing.T) {
	testlog.Start(t)
	q := NewOutboundQueue(0)
	q.Push(PendingSeed{Seed: "s3"})
	q.Requeue(PendingSeed{Seed: "s1"}, PendingSeed{Seed: "s2"})
	q.Requeue()

	for _, want := range []string{"s1", "s2", "s3"} {
		item, ok := q.Pop()
		if !ok || item.Seed != want {
			t.Fatalf("got=%q ok=%v want=%q", item.Seed, ok, want)
		}
	}
}

func TestSeedIDMapLastWriteWins(t *testing.T) {
	testlog.Start(t)
	m := NewSeedIDMap(2)
	m.Record("aa", 1)
	m.Record("aa", 9)
	if id, ok := m.Lookup("aa"); !ok || id != protocol.CorrelationID(9) {
		t.Fatalf("unexpected id: %d ok=%v", id, ok)
	}
	m.Record("bb", 2)
	m.Record("cc", 3)
	if _, ok := m.Lookup("aa"); ok {
		t.Fatalf("oldest entry should be evicted")
	}
	if m.Len() != 2 {
		t.Fatalf("unexpected len: %d", m.Len())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	testlog.Start(t)
	s := New(DefaultConfig(), "4a3f")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			s.Fuzzer.Offer(fmt.Sprintf("%04x", i))
			s.Outbound.Pop()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			if seed, ok := s.Fuzzer.TakeOne(); ok {
				s.Pool.Offer(seed)
			} else {
				s.Pool.PickRandom()
			}
			s.Outbound.Push(PendingSeed{Seed: "aa", ID: protocol.CorrelationID(i)})
			s.IDs.Record("aa", protocol.CorrelationID(i))
		}
	}()
	wg.Wait()

	st := s.Stats()
	if st.FuzzerSeeds > DefaultCapacity || st.PoolSeeds > DefaultCapacity || st.OutboundPending > DefaultOutboundLimit {
		t.Fatalf("bounds violated: %+v", st)
	}
}
