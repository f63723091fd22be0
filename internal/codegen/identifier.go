package codegen

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned for names that are not valid source identifiers.
var ErrInvalidIdentifier = errors.New("not a valid identifier")

// Identifier is a validated source identifier. The zero value is not valid and
// only ParseIdentifier produces usable values.
type Identifier struct {
	name string
}

// ParseIdentifier validates name: an ASCII letter or underscore followed by
// ASCII letters, digits or underscores.
func ParseIdentifier(name string) (Identifier, error) {
	if !IsValidIdentifier(name) {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}

	return Identifier{name: name}, nil
}

// IsValidIdentifier reports whether name can be used as a constant name.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for idx := range len(name) {
		c := name[idx]

		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && idx > 0:
		default:
			return false
		}
	}

	return true
}

// String returns the identifier text.
func (id Identifier) String() string {
	return id.name
}

// IsZero reports whether id was not produced by ParseIdentifier.
func (id Identifier) IsZero() bool {
	return id.name == ""
}

// suffixed appends a fixed, already valid suffix.
func (id Identifier) suffixed(suffix string) string {
	return id.name + suffix
}
