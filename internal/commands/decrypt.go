package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocred/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags]",
		Aliases: []string{"dec"},
		Short:   "Decrypt a file",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newRunner(cfg, cmd.ErrOrStderr()).Decrypt(cfg)
		},
	}

	cmd.Flags().StringP("in", "i", "", "Path to the encrypted input")
	cmd.Flags().StringP("out", "o", "", "Path to the decrypted output")

	return cmd
}
