package encryption

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/aead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	gcmpb "github.com/tink-crypto/tink-go/v2/proto/aes_gcm_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"

	"google.golang.org/protobuf/proto"
)

const (
	// GCMNonceSize is the nonce length Tink prepends to every sealed blob.
	GCMNonceSize = 12
	// GCMTagSize is the authentication tag length appended to every sealed blob.
	GCMTagSize = 16

	aesGcmTypeURL = "type.googleapis.com/google.crypto.tink.AesGcmKey"
)

// GCM implements AES-256-GCM through Tink.
// Sealed blobs are laid out as nonce(12) || ciphertext || tag(16), the same
// combined representation CryptoKit and javax.crypto consume.
type GCM struct{}

// NewGCM returns a GCM scheme. Nonces are drawn by Tink on every call.
func NewGCM() *GCM {
	return &GCM{}
}

// Mode returns ModeGCM.
func (g *GCM) Mode() CipherMode {
	return ModeGCM
}

// Encrypt seals plaintext without associated data.
func (g *GCM) Encrypt(plaintext, key []byte) ([]byte, error) {
	primitive, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	sealed, err := primitive.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("sealing: %w", err)
	}

	return sealed, nil
}

// Decrypt opens a sealed blob. Any fault is reported as ErrAuthenticationFailed.
func (g *GCM) Decrypt(sealed, key []byte) ([]byte, error) {
	primitive, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < GCMNonceSize+GCMTagSize {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := primitive.Decrypt(sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newAEAD(key []byte) (tink.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	handle, err := newAEADKeyHandle(key)
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := aead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating AEAD: %w", err)
	}

	return primitive, nil
}

// newAEADKeyHandle creates a Tink keyset handle for AES-GCM from raw key bytes.
// The key uses the RAW output prefix so sealed blobs carry no Tink key id.
func newAEADKeyHandle(key []byte) (*keyset.Handle, error) {
	serializedKey, err := proto.Marshal(&gcmpb.AesGcmKey{
		Version:  0,
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("serializing AesGcmKey: %w", err)
	}

	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData: &tinkpb.KeyData{
					TypeUrl:         aesGcmTypeURL,
					Value:           serializedKey,
					KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
				},
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("reading keyset: %w", err)
	}

	return handle, nil
}
