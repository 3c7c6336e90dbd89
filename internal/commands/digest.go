package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/bksq/internal/config"
	"github.com/idelchi/bksq/internal/logic"
)

// NewHashCommand creates a new cobra command for the hash subcommand.
func NewHashCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "hash [flags] files...",
		Short:   "Print the Davies-Meyer digest of files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunHash(cfg, cmd.OutOrStdout())
		},
	}
}

// NewMACCommand creates a new cobra command for the mac subcommand.
func NewMACCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "mac [flags] files...",
		Short:   "Print the HMAC tag of files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := cfg.ResolveKey()
			if err != nil {
				return err
			}

			return logic.RunMAC(cfg, key, cmd.OutOrStdout())
		},
	}
}
