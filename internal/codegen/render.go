package codegen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idelchi/gocred/internal/encryption"
)

// BytesPerLine is the wrap width of multi-line byte arrays.
const BytesPerLine = 16

const (
	keySuffix        = "Key"
	ciphertextSuffix = "Ciphertext"
)

// view is the data handed to the dialect templates.
type view struct {
	Name           string
	KeyName        string
	CiphertextName string

	KeyInline       string
	KeyLines        []string
	CiphertextLines []string

	NonceSize int
	TagBits   int
}

// Render produces the source text that embeds payload under id in dialect d.
//
// Passing a zero Identifier is a programming error and panics: names must be
// validated with ParseIdentifier before anything is written.
func Render(d Dialect, id Identifier, payload Payload) ([]byte, error) {
	if id.IsZero() {
		panic("codegen: Render called with an unvalidated identifier")
	}

	literals := d.literals(payload.Key)

	data := view{
		Name:           id.String(),
		KeyName:        id.suffixed(keySuffix),
		CiphertextName: id.suffixed(ciphertextSuffix),
		KeyInline:      strings.Join(literals, ", "),
		KeyLines:       wrap(literals, BytesPerLine),
		NonceSize:      encryption.GCMNonceSize,
		TagBits:        encryption.GCMTagSize * 8,
	}

	var buf bytes.Buffer

	switch payload.Kind {
	case KeyOnly:
		if err := d.keyOnly.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", d.Name, err)
		}
	case KeyAndCiphertext:
		if len(payload.Ciphertext) == 0 {
			return nil, ErrMissingCiphertext
		}

		data.CiphertextLines = wrap(d.literals(payload.Ciphertext), BytesPerLine)

		if err := d.keyAndCiphertext.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", d.Name, err)
		}
	default:
		return nil, fmt.Errorf("rendering %s: unsupported payload kind %d", d.Name, payload.Kind)
	}

	return buf.Bytes(), nil
}

// Emit renders payload once per dialect into artifacts named <id>.<ext> inside dir.
func Emit(dir string, dialects []Dialect, id Identifier, payload Payload) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(dialects))

	for _, dialect := range dialects {
		content, err := Render(dialect, id, payload)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, Artifact{
			Dialect: dialect.Name,
			Path:    dialect.Path(dir, id),
			Content: content,
		})
	}

	return artifacts, nil
}

// Path is where Emit places the artifact for id inside dir.
func (d Dialect) Path(dir string, id Identifier) string {
	return filepath.Join(dir, id.String()+"."+d.Extension)
}

// Symbols lists the top-level names Render declares for id under kind.
func Symbols(id Identifier, kind Kind) []string {
	if kind == KeyAndCiphertext {
		return []string{id.String(), id.suffixed(keySuffix), id.suffixed(ciphertextSuffix)}
	}

	return []string{id.String()}
}

func (d Dialect) literals(data []byte) []string {
	literals := make([]string, len(data))

	for idx, b := range data {
		literals[idx] = d.byteLiteral(b)
	}

	return literals
}

// wrap groups literals into lines of at most perLine elements.
// Every line but the last ends with a comma.
func wrap(literals []string, perLine int) []string {
	var lines []string

	for start := 0; start < len(literals); start += perLine {
		end := min(start+perLine, len(literals))

		line := strings.Join(literals[start:end], ", ")
		if end < len(literals) {
			line += ","
		}

		lines = append(lines, line)
	}

	return lines
}
