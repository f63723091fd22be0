// Package encryption provides the two symmetric schemes used by gocred:
// AES-256 CBC with a random IV and PKCS#7 padding, and AES-256 GCM through Tink.
// Both operate on in-memory buffers and require 32-byte keys.
//
// CBC output is not authenticated. A tampered envelope either fails with
// ErrDecryptionFailed or decrypts to garbage; callers that need integrity must use GCM.
package encryption
