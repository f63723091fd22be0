// Command gocred encrypts and decrypts credential files and generates sources embedding them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocred/internal/commands"
	"github.com/idelchi/gocred/internal/config"
)

// version is set at build time through -ldflags.
var version = "unknown"

func main() {
	var cfg config.Config

	switch err := commands.NewRootCommand(&cfg, version).Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
