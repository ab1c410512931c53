package seedstore

import (
	"sync"
	"time"

	"github.com/danmuck/hexmutator/internal/protocol"
)

// PendingSeed is one generated seed awaiting transmission to the fuzzer.
type PendingSeed struct {
	Seed       string
	ID         protocol.CorrelationID
	FromFuzzer bool
	QueuedAt   time.Time
}

// OutboundQueue is the FIFO between the generation loop and the flush pass.
// A non-zero limit drops the oldest entries once exceeded.
type OutboundQueue struct {
	mu      sync.Mutex
	items   []PendingSeed
	limit   int
	dropped uint64
}

func NewOutboundQueue(limit int) *OutboundQueue {
	if limit < 0 {
		limit = 0
	}
	return &OutboundQueue{limit: limit}
}

// Push appends items in order and returns how many old entries were dropped.
func (q *OutboundQueue) Push(items ...PendingSeed) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, items...)
	if q.limit == 0 || len(q.items) <= q.limit {
		return 0
	}
	drop := len(q.items) - q.limit
	q.items = append(q.items[:0:0], q.items[drop:]...)
	q.dropped += uint64(drop)
	return drop
}

// Pop removes the front entry.
func (q *OutboundQueue) Pop() (PendingSeed, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return PendingSeed{}, false
	}
	item := q.items[0]
	q.items[0] = PendingSeed{}
	q.items = q.items[1:]
	return item, true
}

// Requeue puts entries whose send failed back at the front, keeping their order.
func (q *OutboundQueue) Requeue(items ...PendingSeed) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	front := make([]PendingSeed, 0, len(items)+len(q.items))
	front = append(front, items...)
	q.items = append(front, q.items...)
}

func (q *OutboundQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *OutboundQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
