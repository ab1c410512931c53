package protocol

import (
	"fmt"
	"strings"
)

// DecodeRequest extracts the seed hint carried by a REQUEST message.
//
// The first RequestHeaderLen bytes are discarded. The remainder is decoded as
// text with invalid UTF-8 dropped, trimmed of whitespace and NUL padding, and
// must be hex text. Longer seeds are cut to the first MaxSeedChars characters.
func DecodeRequest(msg Message) (string, error) {
	if msg.Type != TypeRequest {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedType, msg.Type)
	}
	if len(msg.Payload) == 0 {
		return "", ErrEmptyPayload
	}
	if len(msg.Payload) <= RequestHeaderLen {
		return "", fmt.Errorf("%w: header only", ErrMalformedSeed)
	}
	text := strings.ToValidUTF8(string(msg.Payload[RequestHeaderLen:]), "")
	text = strings.Trim(text, " \t\r\n\x00")
	if text == "" {
		return "", fmt.Errorf("%w: no text after header", ErrMalformedSeed)
	}
	for i := 0; i < len(text); i++ {
		if !isHexDigit(text[i]) {
			return "", fmt.Errorf("%w: non-hex byte %q at %d", ErrMalformedSeed, text[i], i)
		}
	}
	if len(text) > MaxSeedChars {
		text = text[:MaxSeedChars]
	}
	return text, nil
}

// EncodeRequest builds a REQUEST message with a zeroed header. Used by fuzzer-side tooling and tests.
func EncodeRequest(seed string) Message {
	buf := make([]byte, RequestHeaderLen, RequestHeaderLen+len(seed))
	buf = append(buf, seed...)
	return Message{Type: TypeRequest, Payload: buf}
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
