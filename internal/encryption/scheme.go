package encryption

import (
	"fmt"
	"io"
)

// Scheme is the contract shared by the CBC and GCM modes.
type Scheme interface {
	// Mode reports which cipher mode the scheme implements.
	Mode() CipherMode
	// Encrypt returns the envelope for plaintext under key, using a fresh IV or nonce.
	Encrypt(plaintext, key []byte) ([]byte, error)
	// Decrypt recovers the plaintext from an envelope produced by Encrypt.
	Decrypt(envelope, key []byte) ([]byte, error)
}

// New returns the scheme for mode. random feeds CBC initialization vectors;
// nil selects crypto/rand. GCM nonces are always drawn by Tink.
func New(mode CipherMode, random io.Reader) (Scheme, error) {
	switch mode {
	case ModeCBC:
		return NewCBC(random), nil
	case ModeGCM:
		return NewGCM(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
