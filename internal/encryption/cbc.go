package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// CBC implements AES-256-CBC with PKCS#7 padding.
// Envelopes are laid out as IV(16) || ciphertext.
type CBC struct {
	// random is the source for initialization vectors
	random io.Reader
}

// NewCBC returns a CBC scheme drawing IVs from random, or from crypto/rand when nil.
func NewCBC(random io.Reader) *CBC {
	if random == nil {
		random = rand.Reader
	}

	return &CBC{random: random}
}

// Mode returns ModeCBC.
func (c *CBC) Mode() CipherMode {
	return ModeCBC
}

// Encrypt pads plaintext, encrypts it under a fresh IV and returns iv || ciphertext.
func (c *CBC) Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	envelope := make([]byte, aes.BlockSize+len(padded))

	iv := envelope[:aes.BlockSize]
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return nil, fmt.Errorf("generating IV: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(envelope[aes.BlockSize:], padded)

	return envelope, nil
}

// Decrypt splits envelope into IV and body, decrypts the body and strips the padding.
// Any fault past the length check is reported as ErrDecryptionFailed.
func (c *CBC) Decrypt(envelope, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	if len(envelope) < aes.BlockSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrEnvelopeTooShort, len(envelope), aes.BlockSize)
	}

	iv := envelope[:aes.BlockSize]
	body := envelope[aes.BlockSize:]

	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return block, nil
}
