// Command bksq encrypts, decrypts, hashes and authenticates files with the BKSQ block cipher.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/bksq/internal/commands"
	"github.com/idelchi/bksq/internal/config"
)

// version is set at build time with -ldflags.
var version = "unknown - unofficial & generated by unknown"

func main() {
	var cfg config.Config

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return
		}

		fmt.Fprintln(os.Stderr, "error:", err)

		os.Exit(1)
	}
}
