//go:build !(linux && (amd64 || arm64))

package ipc

import "github.com/danmuck/hexmutator/internal/protocol"

// SysVQueue is unavailable on this platform; OpenSysV always fails.
type SysVQueue struct{}

func OpenSysV(cfg Config) (*SysVQueue, error) {
	return nil, ErrUnsupported
}

func (q *SysVQueue) Owner() bool { return false }

func (q *SysVQueue) Key() int { return 0 }

func (q *SysVQueue) Receive(mtype protocol.MessageType) (protocol.Message, error) {
	return protocol.Message{}, ErrUnsupported
}

func (q *SysVQueue) Send(msgs ...protocol.Message) (int, error) {
	return 0, ErrUnsupported
}

func (q *SysVQueue) Close() error { return nil }
