// Package commands provides the command-line interface for the gocred tool.
//
// It implements commands for:
//   - encryption, with optional Swift and Kotlin source generation
//   - decryption
//   - key generation
//
// Flags are merged with GOCRED_* environment variables by the root command and
// validated before any file is read or written.
package commands

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocred/internal/config"
	"github.com/idelchi/gocred/internal/logging"
	"github.com/idelchi/gocred/internal/logic"
)

// preRun returns a PreRunE handler that unmarshals and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return cobraext.Validate(cfg, cfg)
	}
}

// newRunner wires the runner to the real filesystem. Artifacts land in the working directory.
func newRunner(cfg *config.Config, stderr io.Writer) *logic.Runner {
	return logic.NewRunner(afero.NewOsFs(), nil, "", logging.New(stderr, cfg.Quiet, cfg.Verbose))
}
