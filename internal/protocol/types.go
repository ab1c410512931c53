package protocol

import "fmt"

// MessageType is the SysV message type tag carried with every message.
type MessageType int64

const (
	TypeSeed      MessageType = 1
	TypeEmptySeed MessageType = 2
	TypeReward    MessageType = 3
	TypeRequest   MessageType = 4
)

const (
	// RequestHeaderLen is the reserved prefix the fuzzer puts in front of REQUEST seed text.
	RequestHeaderLen = 4
	// CorrelationIDLen is the width of the id prefix on SEED payloads.
	CorrelationIDLen = 4
	// MaxSeedChars bounds canonical seed text (1020 bytes as hex pairs).
	MaxSeedChars = 2040
)

func (t MessageType) String() string {
	switch t {
	case TypeSeed:
		return "seed"
	case TypeEmptySeed:
		return "empty_seed"
	case TypeReward:
		return "reward"
	case TypeRequest:
		return "request"
	default:
		return fmt.Sprintf("type(%d)", int64(t))
	}
}

// Valid reports whether t is one of the protocol's tags.
func (t MessageType) Valid() bool {
	return t >= TypeSeed && t <= TypeRequest
}

// Message is one typed datagram on the IPC channel.
type Message struct {
	Type    MessageType
	Payload []byte
}

// CorrelationID tags a generated seed so the fuzzer can refer back to it.
type CorrelationID uint32
