package ipc

import (
	"errors"
	"time"

	"github.com/danmuck/hexmutator/internal/protocol"
)

var (
	// ErrChannelUnavailable reports that exclusive creation found an existing channel.
	ErrChannelUnavailable = errors.New("ipc: channel unavailable")
	// ErrChannelClosed is returned once the channel has been closed or removed.
	ErrChannelClosed = errors.New("ipc: channel closed")
	// ErrWouldBlock reports a full channel on a non-blocking send.
	ErrWouldBlock = errors.New("ipc: send would block")
	// ErrTransport wraps any other transport failure.
	ErrTransport = errors.New("ipc: transport error")
	// ErrUnsupported is returned where the platform has no SysV queues.
	ErrUnsupported = errors.New("ipc: unsupported platform")
)

// AnyType receives the first message regardless of type.
const AnyType protocol.MessageType = 0

// Channel is a bidirectional typed-message transport.
type Channel interface {
	// Receive blocks until a message of mtype (or any type for AnyType) arrives.
	Receive(mtype protocol.MessageType) (protocol.Message, error)
	// Send transmits msgs in order without blocking and returns how many were sent.
	// It stops at the first failure.
	Send(msgs ...protocol.Message) (int, error)
	Close() error
}

// Config describes how the SysV channel is opened.
type Config struct {
	Key           int
	Exclusive     bool
	RemoveOnClose bool
	Perm          uint32
	MaxMessage    int
	PollInterval  time.Duration
	OpenAttempts  int
	Backoff       BackoffConfig
}

func DefaultConfig() Config {
	return Config{
		Key:           1234,
		Exclusive:     true,
		RemoveOnClose: true,
		Perm:          0o666,
		MaxMessage:    8192,
		PollInterval:  50 * time.Millisecond,
		OpenAttempts:  5,
		Backoff:       DefaultBackoff(),
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Perm == 0 {
		c.Perm = def.Perm
	}
	if c.MaxMessage <= 0 {
		c.MaxMessage = def.MaxMessage
	}
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.Backoff.InitialDelay <= 0 {
		c.Backoff = def.Backoff
	}
	return c
}
