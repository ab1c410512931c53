package ipc

import (
	"sync"

	"github.com/danmuck/hexmutator/internal/protocol"
)

// MemChannel is an in-process Channel with SysV queue semantics: one shared
// queue, typed receive takes the oldest message of the requested type.
// Both the coordinator and a simulated fuzzer can hold the same MemChannel.
type MemChannel struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []protocol.Message
	capacity int
	closed   bool
	sendHook func(protocol.Message) error
}

// NewMemChannel creates a channel holding at most capacity messages (0 = unbounded).
func NewMemChannel(capacity int) *MemChannel {
	c := &MemChannel{capacity: capacity}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// SetSendHook installs fn to be consulted before each send; a non-nil error
// fails that send. Used to simulate transport faults.
func (c *MemChannel) SetSendHook(fn func(protocol.Message) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sendHook = fn
}

func (c *MemChannel) Receive(mtype protocol.MessageType) (protocol.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		if c.closed {
			return protocol.Message{}, ErrChannelClosed
		}
		if msg, ok := c.takeLocked(mtype); ok {
			return msg, nil
		}
		c.cond.Wait()
	}
}

// TryReceive is the non-blocking form of Receive.
func (c *MemChannel) TryReceive(mtype protocol.MessageType) (protocol.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.takeLocked(mtype)
}

func (c *MemChannel) Send(msgs ...protocol.Message) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sent := 0
	for _, msg := range msgs {
		if c.closed {
			return sent, ErrChannelClosed
		}
		if c.sendHook != nil {
			if err := c.sendHook(msg); err != nil {
				return sent, err
			}
		}
		if c.capacity > 0 && len(c.queue) >= c.capacity {
			return sent, ErrWouldBlock
		}
		payload := make([]byte, len(msg.Payload))
		copy(payload, msg.Payload)
		c.queue = append(c.queue, protocol.Message{Type: msg.Type, Payload: payload})
		sent++
		c.cond.Broadcast()
	}
	return sent, nil
}

// Len returns the number of queued messages of any type.
func (c *MemChannel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

func (c *MemChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cond.Broadcast()
	return nil
}

func (c *MemChannel) takeLocked(mtype protocol.MessageType) (protocol.Message, bool) {
	for i, msg := range c.queue {
		if mtype != AnyType && msg.Type != mtype {
			continue
		}
		c.queue = append(c.queue[:i], c.queue[i+1:]...)
		return msg, true
	}
	return protocol.Message{}, false
}
