package codegen

import "errors"

// ErrMissingCiphertext is returned when a KeyAndCiphertext payload carries no ciphertext.
var ErrMissingCiphertext = errors.New("key and ciphertext payload without ciphertext")

// Kind selects what a Payload embeds.
type Kind int

const (
	// KeyOnly emits a single constant holding the key bytes.
	KeyOnly Kind = iota
	// KeyAndCiphertext emits the key, the AES-GCM ciphertext, and a lazily
	// decrypted constant that is absent when the ciphertext fails to open.
	KeyAndCiphertext
)

func (k Kind) String() string {
	switch k {
	case KeyOnly:
		return "key-only"
	case KeyAndCiphertext:
		return "key-and-ciphertext"
	default:
		return "unknown"
	}
}

// Payload is the binary material to embed.
type Payload struct {
	Kind       Kind
	Key        []byte
	Ciphertext []byte
}

// Artifact is a rendered source file and its destination.
type Artifact struct {
	Dialect string
	Path    string
	Content []byte
}
