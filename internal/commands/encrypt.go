package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/bksq/internal/config"
	"github.com/idelchi/bksq/internal/logging"
	"github.com/idelchi/bksq/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt and authenticate files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runFiles(cfg)
		},
	}
}

// runFiles resolves the key and hands the configured files to the processor.
func runFiles(cfg *config.Config) error {
	key, err := cfg.ResolveKey()
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.Quiet, cfg.Verbose)

	return logic.Run(cfg, key, log, os.Stderr)
}
