// Package hexcodec converts between byte slices and hexadecimal text.
//
// Decoding is strict:
//   - an optional 0x or 0X prefix is stripped
//   - the remaining text must have an even number of characters
//   - every character must be a hexadecimal digit (either case)
//
// Encoding always produces lowercase output with two digits per byte.
// Error messages never echo the decoded text, since it is frequently key material.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedHex is returned when text is not a valid hexadecimal string.
var ErrMalformedHex = errors.New("malformed hexadecimal string")

// Decode parses text, with an optional 0x/0X prefix, into bytes.
func Decode(text string) ([]byte, error) {
	digits := StripPrefix(text)

	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of digits (%d)", ErrMalformedHex, len(digits))
	}

	for idx := range len(digits) {
		if !isHexDigit(digits[idx]) {
			return nil, fmt.Errorf("%w: invalid character at offset %d", ErrMalformedHex, idx)
		}
	}

	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return nil, ErrMalformedHex
	}

	return decoded, nil
}

// Encode renders data as lowercase hexadecimal, preceded by prefix.
func Encode(data []byte, prefix string) string {
	return prefix + hex.EncodeToString(data)
}

// StripPrefix removes a single leading 0x or 0X from text.
func StripPrefix(text string) string {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		return text[2:]
	}

	return text
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
