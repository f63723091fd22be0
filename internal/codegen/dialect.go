package codegen

import (
	"errors"
	"fmt"
	"sort"
	"text/template"
)

// ErrUnknownDialect is returned by LookupDialect for unregistered names.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect describes how one target language spells byte arrays and constants.
type Dialect struct {
	// Name is the flag value selecting the dialect
	Name string

	// Extension is the file extension of generated artifacts, without the dot
	Extension string

	// byteLiteral spells a single byte as an array element
	byteLiteral func(b byte) string

	keyOnly          *template.Template
	keyAndCiphertext *template.Template
}

const header = "// Code generated by gocred. DO NOT EDIT.\n\n"

//nolint:gochecknoglobals // immutable dialect registry
var (
	swift = Dialect{
		Name:        "swift",
		Extension:   "swift",
		byteLiteral: hexLiteral,
		keyOnly: template.Must(template.New("swift/key").Parse(header +
			`import Foundation

let {{.Name}} = Data([{{.KeyInline}}])
`)),
		keyAndCiphertext: template.Must(template.New("swift/sealed").Parse(header +
			`import CryptoKit
import Foundation

let {{.KeyName}} = Data([
{{range .KeyLines}}	{{.}}
{{end}}])

let {{.CiphertextName}} = Data([
{{range .CiphertextLines}}	{{.}}
{{end}}])

let {{.Name}}: Data? = {
	guard let box = try? AES.GCM.SealedBox(combined: {{.CiphertextName}}) else { return nil }
	return try? AES.GCM.open(box, using: SymmetricKey(data: {{.KeyName}}))
}()
`)),
	}

	kotlin = Dialect{
		Name:        "kotlin",
		Extension:   "kt",
		byteLiteral: kotlinByteLiteral,
		keyOnly: template.Must(template.New("kotlin/key").Parse(header +
			`val {{.Name}} = byteArrayOf({{.KeyInline}})
`)),
		keyAndCiphertext: template.Must(template.New("kotlin/sealed").Parse(header +
			`import javax.crypto.Cipher
import javax.crypto.spec.GCMParameterSpec
import javax.crypto.spec.SecretKeySpec

val {{.KeyName}} = byteArrayOf(
{{range .KeyLines}}	{{.}}
{{end}})

val {{.CiphertextName}} = byteArrayOf(
{{range .CiphertextLines}}	{{.}}
{{end}})

val {{.Name}}: ByteArray? by lazy {
	try {
		val cipher = Cipher.getInstance("AES/GCM/NoPadding")
		val spec = GCMParameterSpec({{.TagBits}}, {{.CiphertextName}}, 0, {{.NonceSize}})
		cipher.init(Cipher.DECRYPT_MODE, SecretKeySpec({{.KeyName}}, "AES"), spec)
		cipher.doFinal({{.CiphertextName}}, {{.NonceSize}}, {{.CiphertextName}}.size - {{.NonceSize}})
	} catch (e: Exception) {
		null
	}
}
`)),
	}

	registry = map[string]Dialect{
		swift.Name:  swift,
		kotlin.Name: kotlin,
	}
)

// LookupDialect returns the registered dialect called name.
func LookupDialect(name string) (Dialect, error) {
	dialect, ok := registry[name]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownDialect, name, DialectNames())
	}

	return dialect, nil
}

// LookupDialects resolves every name, preserving order and dropping duplicates.
func LookupDialects(names []string) ([]Dialect, error) {
	dialects := make([]Dialect, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		dialect, err := LookupDialect(name)
		if err != nil {
			return nil, err
		}

		dialects = append(dialects, dialect)
	}

	return dialects, nil
}

// DefaultDialectNames lists the dialects emitted when none are requested.
func DefaultDialectNames() []string {
	return []string{swift.Name, kotlin.Name}
}

// DialectNames lists every registered dialect in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(registry))

	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func hexLiteral(b byte) string {
	return fmt.Sprintf("0x%02x", b)
}

// kotlinByteLiteral keeps values above 0x7f compilable, since Kotlin's Byte is signed.
func kotlinByteLiteral(b byte) string {
	if b > 0x7f {
		return hexLiteral(b) + ".toByte()"
	}

	return hexLiteral(b)
}
