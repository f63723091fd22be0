package encryption_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocred/internal/encryption"
)

func TestGCMRoundTrip(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	scheme := encryption.NewGCM()

	properties.Property("decrypt inverts encrypt", prop.ForAll(
		func(key, plaintext []byte) bool {
			sealed, err := scheme.Encrypt(plaintext, key)
			if err != nil {
				return false
			}

			if len(sealed) != encryption.GCMNonceSize+len(plaintext)+encryption.GCMTagSize {
				return false
			}

			got, err := scheme.Decrypt(sealed, key)

			return err == nil && bytes.Equal(got, plaintext)
		},
		gen.SliceOfN(encryption.KeySize, gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestGCMBitFlipFailsAuthentication(t *testing.T) {
	t.Parallel()

	scheme := encryption.NewGCM()
	key := newKey(t)

	sealed, err := scheme.Encrypt([]byte("credential"), key)
	require.NoError(t, err)

	for bit := range len(sealed) * 8 {
		tampered := append([]byte(nil), sealed...)
		tampered[bit/8] ^= 1 << (bit % 8)

		got, err := scheme.Decrypt(tampered, key)
		require.ErrorIs(t, err, encryption.ErrAuthenticationFailed, "bit %d", bit)
		require.Nil(t, got, "bit %d released plaintext", bit)
	}
}

func TestGCMDecryptErrors(t *testing.T) {
	t.Parallel()

	scheme := encryption.NewGCM()
	key := newKey(t)

	sealed, err := scheme.Encrypt([]byte("credential"), key)
	require.NoError(t, err)

	tests := []struct {
		name   string
		sealed []byte
		key    []byte
		want   error
	}{
		{"empty", nil, key, encryption.ErrAuthenticationFailed},
		{"nonce only", sealed[:encryption.GCMNonceSize], key, encryption.ErrAuthenticationFailed},
		{"truncated tag", sealed[:len(sealed)-1], key, encryption.ErrAuthenticationFailed},
		{"wrong key", sealed, newKey(t), encryption.ErrAuthenticationFailed},
		{"short key", sealed, key[:16], encryption.ErrInvalidKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := scheme.Decrypt(tt.sealed, tt.key)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGCMFreshNoncePerCall(t *testing.T) {
	t.Parallel()

	scheme := encryption.NewGCM()
	key := newKey(t)

	first, err := scheme.Encrypt([]byte("abc"), key)
	require.NoError(t, err)

	second, err := scheme.Encrypt([]byte("abc"), key)
	require.NoError(t, err)

	assert.NotEqual(t, first[:encryption.GCMNonceSize], second[:encryption.GCMNonceSize])
}

func TestNewAndParseMode(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"cbc", "GCM"} {
		mode, err := encryption.ParseMode(name)
		require.NoError(t, err)

		scheme, err := encryption.New(mode, nil)
		require.NoError(t, err)
		assert.Equal(t, mode, scheme.Mode())
	}

	_, err := encryption.ParseMode("ecb")
	require.ErrorIs(t, err, encryption.ErrUnknownMode)

	_, err = encryption.New("ecb", nil)
	require.ErrorIs(t, err, encryption.ErrUnknownMode)
}
