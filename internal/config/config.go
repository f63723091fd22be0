// Package config holds the runtime configuration of gocred and its validation rules.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idelchi/gocred/internal/codegen"
	"github.com/idelchi/gocred/internal/encryption"
	"github.com/idelchi/gocred/internal/keys"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Key selects the key source. Exactly one of the two must be set.
type Key struct {
	// String is a hex encoded key, optionally prefixed with 0x
	String string `mapstructure:"key" label:"--key" mask:"filled" validate:"exclusive=File,required_without=File"`
	// File is the path to a raw binary key file
	File string `mapstructure:"key-file" label:"--key-file" validate:"required_without=String"`
}

// Source converts the flags into a keys.Source.
func (k Key) Source() keys.Source {
	return keys.Source{Literal: k.String, Path: k.File}
}

// Config is the merged result of flags and GOCRED_* environment variables.
type Config struct {
	// Show prints the configuration and exits
	Show bool `mapstructure:"show"`

	// Common flags
	Key     Key    `mapstructure:",squash"`
	Cipher  string `mapstructure:"cipher" label:"--cipher" validate:"oneof=cbc gcm"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Encrypt/decrypt flags
	Input  string `mapstructure:"in" label:"--in" validate:"required"`
	Output string `mapstructure:"out" label:"--out" validate:"required"`

	// Encrypt-only flags
	Identifier string   `mapstructure:"identifier" label:"--identifier" validate:"omitempty,identifier"`
	Source     string   `mapstructure:"source" label:"--source" validate:"omitempty,identifier"`
	Languages  []string `mapstructure:"lang" label:"--lang" validate:"dive,dialect"`

	// Set by the command, not by flags
	Decrypt bool `mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Mode returns the parsed cipher mode.
func (c *Config) Mode() (encryption.CipherMode, error) {
	return encryption.ParseMode(c.Cipher)
}

// Validate checks config against the struct tags, then checks the flag combinations of c.
// The cipher name is lowercased first. Identifier failures also match codegen.ErrInvalidIdentifier.
func (c *Config) Validate(config any) error {
	c.Cipher = strings.ToLower(c.Cipher)

	validator, err := newValidator()
	if err != nil {
		return err
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		err = fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		err = fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if err != nil {
		if c.hasInvalidName() {
			return fmt.Errorf("%w: %w", codegen.ErrInvalidIdentifier, err)
		}

		return err
	}

	if c.Decrypt && (c.Identifier != "" || c.Source != "") {
		return fmt.Errorf("%w: --identifier and --source are only valid when encrypting", ErrUsage)
	}

	// Embedded ciphertext is decrypted with AES-GCM by the generated code.
	if c.Source != "" && c.Cipher != encryption.ModeGCM.String() {
		return fmt.Errorf("%w: --source requires --cipher gcm", ErrUsage)
	}

	return c.CheckConflicts("")
}

func (c *Config) hasInvalidName() bool {
	for _, name := range []string{c.Identifier, c.Source} {
		if name != "" && !codegen.IsValidIdentifier(name) {
			return true
		}
	}

	return false
}
