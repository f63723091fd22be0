package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocred/internal/config"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "generate [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Long: `Generates a random 32-byte key.
With --key-file the raw key is written to that path, which must not exist yet.
Otherwise the key is printed to stdout as hex.`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if err := cobraext.Validate(cfg); err != nil {
				return err
			}

			if cfg.Key.String != "" {
				return fmt.Errorf("%w: --key cannot be used with generate", config.ErrUsage)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newRunner(cfg, cmd.ErrOrStderr()).Generate(cfg.Key.File, cmd.OutOrStdout())
		},
	}
}
