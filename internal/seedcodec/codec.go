// Package seedcodec converts between canonical seed text, raw bytes and the
// 0x-prefixed form the mutation oracle reads and writes.
//
// A canonical seed is a string of hex byte-pairs ("4a3f9c"), at most
// MaxSeedChars long.
package seedcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// MaxSeedChars caps canonical seeds at 1020 bytes.
	MaxSeedChars = 2040
	// OutputDelimiter marks where generated content starts in oracle output.
	OutputDelimiter = "### Output:"
)

var (
	ErrOddLength = errors.New("seedcodec: odd-length seed")
	ErrNotHex    = errors.New("seedcodec: seed is not hex")
	ErrTooLarge  = errors.New("seedcodec: seed too large")
)

// FromBytes renders raw fuzz input as a canonical seed, truncating at MaxSeedChars.
func FromBytes(raw []byte) string {
	if len(raw) > MaxSeedChars/2 {
		raw = raw[:MaxSeedChars/2]
	}
	return hex.EncodeToString(raw)
}

// ToBytes decodes a canonical seed back into raw bytes.
func ToBytes(seed string) ([]byte, error) {
	if len(seed) > MaxSeedChars {
		return nil, fmt.Errorf("%w: %d chars", ErrTooLarge, len(seed))
	}
	if len(seed)%2 != 0 {
		return nil, fmt.Errorf("%w: %d chars", ErrOddLength, len(seed))
	}
	out, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotHex, err)
	}
	return out, nil
}

// EncodeForPrompt renders a seed the way the oracle was trained to read it:
// 2-byte groups of 0x-prefixed bytes, comma-joined, with a trailing odd
// fragment emitted on its own ("4a3f9c" -> "0x4a0x3f,0x9c").
func EncodeForPrompt(seed string) string {
	if seed == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(seed) * 2)
	for i := 0; i < len(seed); i += 4 {
		if i > 0 {
			b.WriteByte(',')
		}
		if i+3 < len(seed) {
			b.WriteString("0x")
			b.WriteString(seed[i : i+2])
			b.WriteString("0x")
			b.WriteString(seed[i+2 : i+4])
			continue
		}
		b.WriteString("0x")
		b.WriteString(seed[i:])
	}
	return b.String()
}

// Canonicalize extracts a canonical seed from free-form oracle output.
//
// Content after the first OutputDelimiter is used when present; otherwise the
// prompt preamble for domainLabel is blanked out. Punctuation becomes
// whitespace, 0x markers are removed, and only 1- or 2-digit hex tokens survive
// (1-digit tokens are zero-padded). The result may be empty.
func Canonicalize(oracleText, domainLabel string) string {
	text := oracleText
	if _, after, ok := strings.Cut(text, OutputDelimiter); ok {
		text = after
	} else {
		text = strings.ReplaceAll(text, Preamble(domainLabel), " ")
	}
	text = strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)
	text = strings.ReplaceAll(text, "0x", " ")

	var b strings.Builder
	for _, tok := range strings.Fields(text) {
		if b.Len() >= MaxSeedChars {
			break
		}
		if !isHex(tok) {
			continue
		}
		switch len(tok) {
		case 1:
			b.WriteByte('0')
			b.WriteString(tok)
		case 2:
			b.WriteString(tok)
		}
	}
	out := b.String()
	if len(out) > MaxSeedChars {
		out = out[:MaxSeedChars]
	}
	return out
}

// Valid reports whether seed is non-oversized hex text.
func Valid(seed string) bool {
	return len(seed) <= MaxSeedChars && isHex(seed)
}

func isASCIIAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')) {
			return false
		}
	}
	return true
}
