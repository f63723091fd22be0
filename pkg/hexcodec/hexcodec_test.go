package hexcodec_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/idelchi/gocred/pkg/hexcodec"
)

// Case is a single decode case from a YAML golden file.
type Case struct {
	Text        string `yaml:"text"`
	Hex         string `yaml:"hex"`
	Malformed   bool   `yaml:"malformed"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of decode cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	var all []Group

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var groups []Group
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		all = append(all, groups...)
	}

	return all
}

// TestDecode runs all golden cases against hexcodec.Decode.
func TestDecode(t *testing.T) {
	t.Parallel()

	for _, group := range loadGroups(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range group.Cases {
				desc := tc.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()

					got, err := hexcodec.Decode(tc.Text)

					if tc.Malformed {
						if !errors.Is(err, hexcodec.ErrMalformedHex) {
							t.Fatalf("Decode(%q) error = %v, want ErrMalformedHex", tc.Text, err)
						}

						return
					}

					if err != nil {
						t.Fatalf("Decode(%q) error: %v", tc.Text, err)
					}

					want, _ := hex.DecodeString(tc.Hex)
					if !bytes.Equal(got, want) {
						t.Errorf("Decode(%q) = %x, want %x", tc.Text, got, want)
					}
				})
			}
		})
	}
}

func TestErrorDoesNotEchoInput(t *testing.T) {
	t.Parallel()

	const secret = "0xsecretsecret"

	_, err := hexcodec.Decode(secret)
	if err == nil {
		t.Fatal("expected error")
	}

	if bytes.Contains([]byte(err.Error()), []byte("secret")) {
		t.Errorf("error message leaks input: %q", err)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data   []byte
		prefix string
		want   string
	}{
		{nil, "", ""},
		{[]byte{}, "0x", "0x"},
		{[]byte{0x00, 0x0f, 0xab, 0xff}, "", "000fabff"},
		{[]byte("Hello World"), "0x", "0x48656c6c6f20576f726c64"},
	}

	for _, tt := range tests {
		if got := hexcodec.Encode(tt.data, tt.prefix); got != tt.want {
			t.Errorf("Encode(%x, %q) = %q, want %q", tt.data, tt.prefix, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("decode inverts encode", prop.ForAll(
		func(data []byte, upper bool) bool {
			prefix := "0x"
			if upper {
				prefix = "0X"
			}

			for _, p := range []string{"", prefix} {
				got, err := hexcodec.Decode(hexcodec.Encode(data, p))
				if err != nil || !bytes.Equal(got, data) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.UInt8()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
