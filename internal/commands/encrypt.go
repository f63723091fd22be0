package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocred/internal/codegen"
	"github.com/idelchi/gocred/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags]",
		Aliases: []string{"enc"},
		Short:   "Encrypt a file",
		Example: `  gocred encrypt -f secret.key -i token.txt -o token.enc
  gocred encrypt -c gcm -f secret.key -i token.txt -o token.enc --source apiToken`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newRunner(cfg, cmd.ErrOrStderr()).Encrypt(cfg)
		},
	}

	cmd.Flags().StringP("in", "i", "", "Path to the plaintext input")
	cmd.Flags().StringP("out", "o", "", "Path to the encrypted output")
	cmd.Flags().String("identifier", "", "Emit sources declaring the key under this name")
	cmd.Flags().String("source", "", "Emit sources embedding key and ciphertext under this name (requires gcm)")
	cmd.Flags().StringSlice("lang", codegen.DefaultDialectNames(), "Languages to emit sources for")

	return cmd
}
