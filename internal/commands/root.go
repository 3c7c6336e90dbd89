package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/bksq/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// The flags are persistent so that every subcommand accepts them.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "bksq [flags] command [flags]"
	root.Short = "Authenticated file encryption with the BKSQ block cipher"
	root.Long = `Encrypts files with the 96-bit BKSQ block cipher in counter mode and
authenticates them with a Davies-Meyer HMAC (encrypt-then-MAC).
Every flag can also be set through a BKSQ_<FLAG> environment variable.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.StringP("key", "k", "", "Key (12 bytes, hex-encoded)")
	flags.StringP("key-file", "f", "", "Path to a file holding the hex-encoded key")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of files processed in parallel")
	flags.IntP("workers", "w", 1, "Number of goroutines for the counter-mode pass of a single file")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Enable debug output")
	flags.BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("stats", false, "Print statistics after processing")
	flags.Bool("dry", false, "Show what would be processed without writing anything")
	flags.BoolP("preserve-timestamps", "p", false, "Copy the modification time of the input to the output")
	flags.String("encrypt-ext", ".bksq", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewHashCommand(cfg),
		NewMACCommand(cfg),
		NewKeygenCommand(),
	)

	return root
}

// preRun returns a PreRunE handler that records the positional arguments, lets the root command
// merge flags and BKSQ_* environment variables into cfg and validates the result.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Files = args

		return cobraext.Validate(cfg, cfg)
	}
}
