// Package keys resolves the symmetric key for an operation.
//
// A key comes from exactly one of three places: a hexadecimal literal, an existing
// raw key file, or, for encryption only, a freshly generated random key that is
// persisted to the requested path before it is handed out.
package keys

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/gocred/internal/fileutil"
	"github.com/idelchi/gocred/pkg/hexcodec"
)

// DefaultLength is the key length used by gocred.
const DefaultLength = 32

var (
	// ErrInvalidKeyLength is returned when a key does not have the required length.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrKeyNotFound is returned when decryption names a key file that does not exist.
	ErrKeyNotFound = errors.New("key file not found")
	// ErrPersistFailed is returned when a generated key cannot be written to disk.
	ErrPersistFailed = errors.New("persisting generated key")
	// ErrKeyExists is returned when Generate would overwrite an existing key file.
	ErrKeyExists = errors.New("key file already exists")
	// ErrNoSource is returned when neither a literal nor a path was supplied.
	ErrNoSource = errors.New("no key or key file given")
)

// Provenance describes where a resolved key came from.
type Provenance int

const (
	// Literal keys were parsed from a hexadecimal string.
	Literal Provenance = iota
	// File keys were read from an existing key file.
	File
	// Generated keys were created from the random source and persisted.
	Generated
)

func (p Provenance) String() string {
	switch p {
	case Literal:
		return "literal"
	case File:
		return "file"
	case Generated:
		return "generated"
	default:
		return fmt.Sprintf("Provenance(%d)", int(p))
	}
}

// Source names where to look for a key. Literal takes precedence over Path.
type Source struct {
	// Literal is a hex-encoded key, optionally prefixed with 0x
	Literal string
	// Path is the location of a raw binary key file
	Path string
}

// Provider resolves keys against a filesystem and a random source.
type Provider struct {
	fs     afero.Fs
	random io.Reader
	length int
}

// NewProvider returns a Provider for keys of length bytes.
// A nil random selects crypto/rand; a non-positive length selects DefaultLength.
func NewProvider(fs afero.Fs, random io.Reader, length int) *Provider {
	if length <= 0 {
		length = DefaultLength
	}

	return &Provider{fs: fs, random: random, length: length}
}

// ResolveForEncryption returns the key for an encryption run.
// If src names a path that does not exist yet, a random key is generated and written
// there before returning; failing to persist it is an error, since the caller would
// otherwise lose the only copy.
func (p *Provider) ResolveForEncryption(src Source) ([]byte, Provenance, error) {
	if src.Literal != "" {
		key, err := p.parse(src.Literal)

		return key, Literal, err
	}

	if src.Path == "" {
		return nil, 0, ErrNoSource
	}

	exists, err := afero.Exists(p.fs, src.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("checking key file %q: %w", src.Path, err)
	}

	if exists {
		key, err := p.read(src.Path)

		return key, File, err
	}

	key, err := p.randomKey()
	if err != nil {
		return nil, 0, err
	}

	if err := fileutil.WriteFile(p.fs, src.Path, key); err != nil {
		return nil, 0, fmt.Errorf("%w to %q: %w", ErrPersistFailed, src.Path, err)
	}

	return key, Generated, nil
}

// ResolveForDecryption returns the key for a decryption run.
// It never creates a key: a missing key file is ErrKeyNotFound.
func (p *Provider) ResolveForDecryption(src Source) ([]byte, error) {
	if src.Literal != "" {
		return p.parse(src.Literal)
	}

	if src.Path == "" {
		return nil, ErrNoSource
	}

	exists, err := afero.Exists(p.fs, src.Path)
	if err != nil {
		return nil, fmt.Errorf("checking key file %q: %w", src.Path, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, src.Path)
	}

	return p.read(src.Path)
}

// Generate creates a new random key. With a non-empty path the key is persisted
// there; an existing file is never overwritten.
func (p *Provider) Generate(path string) ([]byte, error) {
	if path != "" {
		exists, err := afero.Exists(p.fs, path)
		if err != nil {
			return nil, fmt.Errorf("checking key file %q: %w", path, err)
		}

		if exists {
			return nil, fmt.Errorf("%w: %q", ErrKeyExists, path)
		}
	}

	key, err := p.randomKey()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return key, nil
	}

	if err := fileutil.WriteFile(p.fs, path, key); err != nil {
		return nil, fmt.Errorf("%w to %q: %w", ErrPersistFailed, path, err)
	}

	return key, nil
}

func (p *Provider) parse(literal string) ([]byte, error) {
	key, err := hexcodec.Decode(literal)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	if err := p.check(key); err != nil {
		return nil, err
	}

	return key, nil
}

func (p *Provider) read(path string) ([]byte, error) {
	key, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading key file %q: %w", path, err)
	}

	if err := p.check(key); err != nil {
		return nil, fmt.Errorf("key file %q: %w", path, err)
	}

	return key, nil
}

func (p *Provider) randomKey() ([]byte, error) {
	if p.random == nil {
		generated, err := key.New(p.length)
		if err != nil {
			return nil, fmt.Errorf("generating key: %w", err)
		}

		return generated, nil
	}

	generated := make([]byte, p.length)
	if _, err := io.ReadFull(p.random, generated); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	return generated, nil
}

func (p *Provider) check(key []byte) error {
	if len(key) != p.length {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), p.length)
	}

	return nil
}
