package codegen_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gocred/internal/codegen"
)

// IdentifierCase is a single identifier from testdata/identifiers.yml.
type IdentifierCase struct {
	Name        string `yaml:"name"`
	Invalid     bool   `yaml:"invalid"`
	Description string `yaml:"description,omitempty"`
}

// IdentifierGroup is a named collection of identifier cases.
type IdentifierGroup struct {
	Name  string           `yaml:"name"`
	Cases []IdentifierCase `yaml:"cases"`
}

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/identifiers.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var groups []IdentifierGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	for _, group := range groups {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range group.Cases {
				desc := tc.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d_%s", i, tc.Name)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()

					id, err := codegen.ParseIdentifier(tc.Name)

					if tc.Invalid {
						if !errors.Is(err, codegen.ErrInvalidIdentifier) {
							t.Fatalf("ParseIdentifier(%q) error = %v, want ErrInvalidIdentifier", tc.Name, err)
						}

						if !id.IsZero() {
							t.Errorf("ParseIdentifier(%q) returned a usable identifier", tc.Name)
						}

						return
					}

					if err != nil {
						t.Fatalf("ParseIdentifier(%q) error: %v", tc.Name, err)
					}

					if id.String() != tc.Name {
						t.Errorf("String() = %q, want %q", id.String(), tc.Name)
					}

					if !codegen.IsValidIdentifier(tc.Name) {
						t.Errorf("IsValidIdentifier(%q) = false", tc.Name)
					}
				})
			}
		})
	}
}
