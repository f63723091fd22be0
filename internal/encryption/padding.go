package encryption

import (
	"crypto/subtle"
)

// pkcs7Pad returns a copy of data with PKCS#7 padding appended.
// The input slice is never modified.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	padded := make([]byte, len(data)+padding)
	copy(padded, data)

	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}

	return padded
}

// pkcs7Unpad removes PKCS#7 padding from data.
// Every fault is reported as ErrDecryptionFailed, and all padding bytes are
// inspected regardless of where the first mismatch is.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 || length%blockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	padding := int(data[length-1])
	if padding == 0 || padding > blockSize {
		return nil, ErrDecryptionFailed
	}

	good := 1

	for i := length - blockSize; i < length; i++ {
		inPadding := subtle.ConstantTimeLessOrEq(length-padding, i)
		matches := subtle.ConstantTimeByteEq(data[i], byte(padding))
		// Positions outside the padding always pass.
		good &= matches | (inPadding ^ 1)
	}

	if good != 1 {
		return nil, ErrDecryptionFailed
	}

	return data[:length-padding], nil
}
