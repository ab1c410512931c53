package protocol

import (
	"encoding/binary"
	"fmt"
)

// SeedMessage is the decoded form of a SEED payload.
type SeedMessage struct {
	ID   CorrelationID
	Seed string
}

// EncodeSeed builds a SEED message: 4-byte correlation id followed by the seed text.
func EncodeSeed(id CorrelationID, seed string) (Message, error) {
	if len(seed) > MaxSeedChars {
		return Message{}, fmt.Errorf("%w: %d chars", ErrSeedTooLarge, len(seed))
	}
	buf := make([]byte, CorrelationIDLen, CorrelationIDLen+len(seed))
	binary.NativeEndian.PutUint32(buf, uint32(id))
	buf = append(buf, seed...)
	return Message{Type: TypeSeed, Payload: buf}, nil
}

// DecodeSeed parses a SEED message. It is the fuzzer-side view of EncodeSeed.
func DecodeSeed(msg Message) (SeedMessage, error) {
	if msg.Type != TypeSeed {
		return SeedMessage{}, fmt.Errorf("%w: %s", ErrUnexpectedType, msg.Type)
	}
	if len(msg.Payload) < CorrelationIDLen {
		return SeedMessage{}, ErrTruncated
	}
	return SeedMessage{
		ID:   CorrelationID(binary.NativeEndian.Uint32(msg.Payload[:CorrelationIDLen])),
		Seed: string(msg.Payload[CorrelationIDLen:]),
	}, nil
}
