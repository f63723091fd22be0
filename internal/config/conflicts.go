package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/idelchi/gocred/internal/codegen"
)

// ErrConflict is returned when two flags name the same file or the same generated symbol.
var ErrConflict = errors.New("conflicting arguments")

// CheckConflicts rejects configurations where a write would replace the key file, the input,
// or another output, and where the generated sources would declare the same symbol twice.
// Artifacts are assumed to be emitted into dir.
func (c *Config) CheckConflicts(dir string) error {
	if err := c.checkSymbols(); err != nil {
		return err
	}

	return c.checkPaths(dir)
}

func (c *Config) checkSymbols() error {
	if c.Identifier == "" || c.Source == "" {
		return nil
	}

	identifier, err := codegen.ParseIdentifier(c.Identifier)
	if err != nil {
		return err
	}

	source, err := codegen.ParseIdentifier(c.Source)
	if err != nil {
		return err
	}

	for _, symbol := range codegen.Symbols(source, codegen.KeyAndCiphertext) {
		if symbol == identifier.String() {
			return fmt.Errorf("%w: --identifier %q is also declared by --source %q", ErrConflict, c.Identifier, c.Source)
		}
	}

	return nil
}

func (c *Config) checkPaths(dir string) error {
	type target struct {
		label string
		path  string
	}

	targets := []target{
		{"--key-file", c.Key.File},
		{"--in", c.Input},
		{"--out", c.Output},
	}

	if !c.Decrypt {
		artifacts, err := c.artifactPaths(dir)
		if err != nil {
			return err
		}

		for _, path := range artifacts {
			targets = append(targets, target{"generated source", path})
		}
	}

	claimed := make(map[string]string, len(targets))

	for _, t := range targets {
		if t.path == "" {
			continue
		}

		clean := filepath.Clean(t.path)

		if previous, ok := claimed[clean]; ok {
			return fmt.Errorf("%w: %s and %s both refer to %q", ErrConflict, previous, t.label, clean)
		}

		claimed[clean] = t.label
	}

	return nil
}

// artifactPaths lists the source files an encrypt run writes into dir.
func (c *Config) artifactPaths(dir string) ([]string, error) {
	if c.Identifier == "" && c.Source == "" {
		return nil, nil
	}

	names := c.Languages
	if len(names) == 0 {
		names = codegen.DefaultDialectNames()
	}

	dialects, err := codegen.LookupDialects(names)
	if err != nil {
		return nil, err
	}

	var paths []string

	for _, name := range []string{c.Identifier, c.Source} {
		if name == "" {
			continue
		}

		id, err := codegen.ParseIdentifier(name)
		if err != nil {
			return nil, err
		}

		for _, dialect := range dialects {
			paths = append(paths, dialect.Path(dir, id))
		}
	}

	return paths, nil
}
