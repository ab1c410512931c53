//go:build linux && (amd64 || arm64)

package ipc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/danmuck/hexmutator/internal/protocol"
)

// msgflg bit asking msgrcv to truncate oversized messages instead of failing.
const msgNoError = 0o10000

// width of the long mtype field in struct msgbuf
const mtypeLen = 8

// SysVQueue is a Channel backed by a System V message queue.
type SysVQueue struct {
	id        int
	key       int
	owner     bool
	removeOn  bool
	maxMsg    int
	poll      time.Duration
	closed    atomic.Bool
	closeOnce sync.Once
}

// OpenSysV opens the queue under cfg.Key. With cfg.Exclusive an existing
// queue yields ErrChannelUnavailable; otherwise it is attached to.
func OpenSysV(cfg Config) (*SysVQueue, error) {
	cfg = cfg.WithDefaults()
	perm := uintptr(cfg.Perm & 0o777)

	id, err := msgget(cfg.Key, unix.IPC_CREAT|unix.IPC_EXCL|perm)
	owner := true
	if errors.Is(err, unix.EEXIST) {
		if cfg.Exclusive {
			return nil, fmt.Errorf("%w: key=%d already exists", ErrChannelUnavailable, cfg.Key)
		}
		id, err = msgget(cfg.Key, perm)
		owner = false
	}
	if err != nil {
		if errors.Is(err, unix.ENOSYS) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		return nil, fmt.Errorf("%w: msgget key=%d: %v", ErrTransport, cfg.Key, err)
	}
	return &SysVQueue{
		id:       id,
		key:      cfg.Key,
		owner:    owner,
		removeOn: cfg.RemoveOnClose && owner,
		maxMsg:   cfg.MaxMessage,
		poll:     cfg.PollInterval,
	}, nil
}

// Owner reports whether this process created the queue.
func (q *SysVQueue) Owner() bool {
	return q.owner
}

func (q *SysVQueue) Key() int {
	return q.key
}

// Receive blocks in msgrcv when Close removes the queue (removal wakes the
// waiter with EIDRM). Otherwise it polls so Close can still interrupt it.
func (q *SysVQueue) Receive(mtype protocol.MessageType) (protocol.Message, error) {
	buf := make([]byte, mtypeLen+q.maxMsg)
	for {
		if q.closed.Load() {
			return protocol.Message{}, ErrChannelClosed
		}
		flags := uintptr(msgNoError)
		if !q.removeOn {
			flags |= unix.IPC_NOWAIT
		}
		n, err := msgrcv(q.id, buf, q.maxMsg, int64(mtype), flags)
		switch {
		case err == nil:
			payload := make([]byte, n)
			copy(payload, buf[mtypeLen:mtypeLen+n])
			return protocol.Message{
				Type:    protocol.MessageType(int64(binary.NativeEndian.Uint64(buf[:mtypeLen]))),
				Payload: payload,
			}, nil
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ENOMSG):
			time.Sleep(q.poll)
			continue
		case errors.Is(err, unix.EIDRM), errors.Is(err, unix.EINVAL):
			return protocol.Message{}, ErrChannelClosed
		default:
			return protocol.Message{}, fmt.Errorf("%w: msgrcv: %v", ErrTransport, err)
		}
	}
}

func (q *SysVQueue) Send(msgs ...protocol.Message) (int, error) {
	for i, msg := range msgs {
		if q.closed.Load() {
			return i, ErrChannelClosed
		}
		if len(msg.Payload) > q.maxMsg {
			return i, fmt.Errorf("%w: payload %d > %d", ErrTransport, len(msg.Payload), q.maxMsg)
		}
		buf := make([]byte, mtypeLen+len(msg.Payload))
		binary.NativeEndian.PutUint64(buf[:mtypeLen], uint64(msg.Type))
		copy(buf[mtypeLen:], msg.Payload)
		for {
			err := msgsnd(q.id, buf, len(msg.Payload), unix.IPC_NOWAIT)
			if err == nil {
				break
			}
			switch {
			case errors.Is(err, unix.EINTR):
				continue
			case errors.Is(err, unix.EAGAIN):
				return i, ErrWouldBlock
			case errors.Is(err, unix.EIDRM), errors.Is(err, unix.EINVAL):
				return i, ErrChannelClosed
			default:
				return i, fmt.Errorf("%w: msgsnd: %v", ErrTransport, err)
			}
		}
	}
	return len(msgs), nil
}

// Close marks the queue closed and removes it if this process created it
// and RemoveOnClose was set.
func (q *SysVQueue) Close() error {
	var err error
	q.closeOnce.Do(func() {
		q.closed.Store(true)
		if !q.removeOn {
			return
		}
		if _, _, errno := unix.Syscall(unix.SYS_MSGCTL, uintptr(q.id), unix.IPC_RMID, 0); errno != 0 {
			err = fmt.Errorf("%w: msgctl rmid: %v", ErrTransport, errno)
		}
	})
	return err
}

func msgget(key int, flags uintptr) (int, error) {
	r1, _, errno := unix.Syscall(unix.SYS_MSGGET, uintptr(int32(key)), flags, 0)
	if errno != 0 {
		return -1, errno
	}
	return int(r1), nil
}

func msgsnd(id int, buf []byte, size int, flags uintptr) error {
	_, _, errno := unix.Syscall6(unix.SYS_MSGSND, uintptr(id), uintptr(unsafe.Pointer(&buf[0])), uintptr(size), flags, 0, 0)
	runtime.KeepAlive(buf)
	if errno != 0 {
		return errno
	}
	return nil
}

func msgrcv(id int, buf []byte, size int, mtype int64, flags uintptr) (int, error) {
	r1, _, errno := unix.Syscall6(unix.SYS_MSGRCV, uintptr(id), uintptr(unsafe.Pointer(&buf[0])), uintptr(size), uintptr(mtype), flags, 0)
	runtime.KeepAlive(buf)
	if errno != 0 {
		return 0, errno
	}
	return int(r1), nil
}
