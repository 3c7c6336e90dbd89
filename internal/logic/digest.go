package logic

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/bksq/internal/config"
	"github.com/idelchi/bksq/internal/encryption"
	"github.com/idelchi/bksq/pkg/bksq"
)

// RunHash prints the Davies-Meyer digest of every configured file.
func RunHash(cfg *config.Config, out io.Writer) error {
	return sumFiles(cfg, out, encryption.HashFile)
}

// RunMAC prints the HMAC tag of every configured file under key.
func RunMAC(cfg *config.Config, key bksq.Key, out io.Writer) error {
	return sumFiles(cfg, out, func(path string) (bksq.Block, error) {
		return encryption.MACFile(path, key)
	})
}

// sumFiles computes one block per file concurrently and prints them in input order
// as "<hex>  <file>" lines.
func sumFiles(cfg *config.Config, out io.Writer, sum func(string) (bksq.Block, error)) error {
	if _, err := resolveAll(cfg); err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	sums := make([]bksq.Block, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	for i, file := range cfg.Files {
		group.Go(func() error {
			block, err := sum(file)
			if err != nil {
				return fmt.Errorf("%q: %w", file, err)
			}

			sums[i] = block

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, file := range cfg.Files {
		fmt.Fprintf(out, "%s  %s\n", hex.EncodeToString(sums[i][:]), file)
	}

	return nil
}
