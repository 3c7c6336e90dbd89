// Package logic implements the core business logic of the bksq command line.
package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/idelchi/bksq/internal/config"
	"github.com/idelchi/bksq/internal/encryption"
	"github.com/idelchi/bksq/pkg/bksq"
)

// Run resolves the configured files and encrypts or decrypts them.
// Dry-run listings and statistics are written to out.
func Run(cfg *config.Config, key bksq.Key, log zerolog.Logger, out io.Writer) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	skipped := scanned - len(cfg.Files)

	if cfg.Dry {
		dryRun(cfg, scanned, skipped, start, out)

		return nil
	}

	processed, errored, totalSize, err := encryption.NewProcessor(cfg, key, log).ProcessFiles()

	if cfg.Stats {
		printStats(out, stats{
			scanned:   scanned,
			skipped:   skipped,
			processed: processed,
			errored:   errored,
			size:      totalSize,
			duration:  time.Since(start),
		})
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// dryRun previews what would be processed without touching any file.
func dryRun(cfg *config.Config, scanned, skipped int, start time.Time, out io.Writer) {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Fprintf(out, "Would process %q -> %q\n", file, encryption.OutputPath(file, cfg))
		}

		if info, err := os.Stat(file); err == nil {
			totalSize += info.Size()
		}
	}

	if cfg.Stats {
		printStats(out, stats{
			scanned:   scanned,
			skipped:   skipped,
			processed: len(cfg.Files),
			size:      totalSize,
			duration:  time.Since(start),
		})
	}
}

type stats struct {
	scanned, skipped, processed, errored int

	size     int64
	duration time.Duration
}

func printStats(out io.Writer, s stats) {
	fmt.Fprintf(out, "\nStats\n")
	fmt.Fprintf(out, "  Scanned:   %d\n", s.scanned)
	fmt.Fprintf(out, "  Skipped:   %d\n", s.skipped)
	fmt.Fprintf(out, "  Processed: %d\n", s.processed)
	fmt.Fprintf(out, "  Errors:    %d\n", s.errored)
	//nolint:gosec // size is a sum of file sizes and never negative
	fmt.Fprintf(out, "  Size:      %s\n", humanize.IBytes(uint64(max(0, s.size))))
	fmt.Fprintf(out, "  Duration:  %s\n", s.duration.Round(time.Millisecond))
}
