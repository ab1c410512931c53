package protocol

import "errors"

var (
	ErrTruncated      = errors.New("protocol: truncated data")
	ErrEmptyPayload   = errors.New("protocol: empty payload")
	ErrMalformedSeed  = errors.New("protocol: malformed seed input")
	ErrSeedTooLarge   = errors.New("protocol: seed too large")
	ErrUnexpectedType = errors.New("protocol: unexpected message type")
)
