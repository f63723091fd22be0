package encryption

import (
	"fmt"
	"strings"
)

// CipherMode names the encryption scheme used for an invocation.
type CipherMode string

const (
	// ModeCBC represents AES-256 in Cipher Block Chaining mode.
	ModeCBC CipherMode = "cbc"
	// ModeGCM represents AES-256 in Galois/Counter mode with Tink.
	ModeGCM CipherMode = "gcm"
)

// KeySize is the required key size for both modes.
const KeySize = 32

// ParseMode converts a case-insensitive mode name into a CipherMode.
func ParseMode(name string) (CipherMode, error) {
	switch mode := CipherMode(strings.ToLower(name)); mode {
	case ModeCBC, ModeGCM:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

func (m CipherMode) String() string {
	return string(m)
}
