package encryption

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not KeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrEnvelopeTooShort is returned when a CBC envelope cannot hold an IV.
	ErrEnvelopeTooShort = errors.New("encrypted data too short")
	// ErrDecryptionFailed is the single error reported for every CBC decryption fault.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrAuthenticationFailed is the single error reported for every GCM open fault.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrUnknownMode is returned for cipher mode names other than cbc and gcm.
	ErrUnknownMode = errors.New("unknown cipher mode")
)
