// Package corrid allocates correlation ids for seeds sent to the fuzzer.
package corrid

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/danmuck/hexmutator/internal/protocol"
)

// Mode selects how ids are spread across the items of one round.
type Mode string

const (
	// ModeUnique gives every item of a round its own id.
	ModeUnique Mode = "unique"
	// ModeRound tags every item of a round with the same id.
	ModeRound Mode = "round"
)

const DefaultStep = 8

var ErrInvalidMode = errors.New("corrid: invalid mode")

func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeUnique:
		return ModeUnique, nil
	case ModeRound:
		return ModeRound, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
}

// Allocator hands out ids as counter+offset. The counter starts at 1 and
// advances by at least step per round; offset distinguishes sibling
// coordinator processes sharing the same counter space.
type Allocator struct {
	mu      sync.Mutex
	counter uint32
	offset  uint32
	step    uint32
	mode    Mode
}

// NewAllocator uses the process id as offset.
func NewAllocator(step int, mode Mode) *Allocator {
	return NewAllocatorWithOffset(uint32(os.Getpid()), step, mode)
}

func NewAllocatorWithOffset(offset uint32, step int, mode Mode) *Allocator {
	if step <= 0 {
		step = DefaultStep
	}
	if mode == "" {
		mode = ModeUnique
	}
	return &Allocator{
		counter: 1,
		offset:  offset,
		step:    uint32(step),
		mode:    mode,
	}
}

// NextBatch returns n ids for one generation round and advances the counter.
//
// In ModeUnique the ids are strictly increasing and the counter moves past the
// last one even when n exceeds step. In ModeRound all n ids share one value.
func (a *Allocator) NextBatch(n int) []protocol.CorrelationID {
	if n < 0 {
		n = 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	base := a.counter + a.offset
	out := make([]protocol.CorrelationID, n)
	for i := range out {
		if a.mode == ModeRound {
			out[i] = protocol.CorrelationID(base)
			continue
		}
		out[i] = protocol.CorrelationID(base + uint32(i))
	}

	advance := a.step
	if a.mode == ModeUnique && uint32(n) > advance {
		advance = uint32(n)
	}
	a.counter += advance
	return out
}

// Peek returns the id the next round would start at.
func (a *Allocator) Peek() protocol.CorrelationID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return protocol.CorrelationID(a.counter + a.offset)
}

func (a *Allocator) Mode() Mode {
	return a.mode
}
