package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocred/internal/config"
	"github.com/idelchi/gocred/internal/encryption"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gocred [flags] command [flags]"
	root.Short = "Credential encryption utility"
	root.Long = `Encrypts or decrypts a single file under a 32-byte AES key.
Keys are read from a hex literal or a raw key file, or generated and saved on first use.
Encryption can also emit Swift and Kotlin sources embedding the key and ciphertext.`

	root.Flags().BoolP("show", "s", false, "Show the configuration and exit")

	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "Encryption key (32 bytes, hex-encoded, optional 0x prefix)")
	flags.StringP("key-file", "f", "", "Path to the raw key file, created on encrypt if missing")
	flags.StringP("cipher", "c", encryption.ModeCBC.String(), "Cipher mode: cbc or gcm")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Enable debug output")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewGenerateCommand(cfg))

	return root
}
