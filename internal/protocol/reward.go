package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reward is the reserved REWARD payload: a correlation id and a float32 score.
// No component consumes it yet; the layout is kept so the wire stays stable.
type Reward struct {
	ID    CorrelationID
	Score float32
}

const rewardLen = CorrelationIDLen + 4

func EncodeReward(r Reward) Message {
	buf := make([]byte, rewardLen)
	binary.NativeEndian.PutUint32(buf[0:4], uint32(r.ID))
	binary.NativeEndian.PutUint32(buf[4:8], math.Float32bits(r.Score))
	return Message{Type: TypeReward, Payload: buf}
}

func DecodeReward(msg Message) (Reward, error) {
	if msg.Type != TypeReward {
		return Reward{}, fmt.Errorf("%w: %s", ErrUnexpectedType, msg.Type)
	}
	if len(msg.Payload) < rewardLen {
		return Reward{}, ErrTruncated
	}
	return Reward{
		ID:    CorrelationID(binary.NativeEndian.Uint32(msg.Payload[0:4])),
		Score: math.Float32frombits(binary.NativeEndian.Uint32(msg.Payload[4:8])),
	}, nil
}
