package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/bksq/internal/config"
	"github.com/idelchi/bksq/internal/fileutil"
	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/ctr"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key is the toolkit key used for both counter mode and HMAC
	key bksq.Key

	// log receives one event per processed file
	log zerolog.Logger

	// results channels processing outcomes to the reporting goroutine
	results chan Result
}

// NewProcessor creates a Processor for the files listed in cfg.
func NewProcessor(cfg *config.Config, key bksq.Key, log zerolog.Logger) *Processor {
	return &Processor{
		cfg:     cfg,
		key:     key,
		log:     log,
		results: make(chan Result, len(cfg.Files)),
	}
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files, the number of errors and the total output size.
//
//nolint:cyclop
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				p.log.Error().Err(result.Error).Str("input", result.Input).Msg("processing failed")

				continue
			}

			processed++

			totalSize += result.OutputSize

			p.log.Info().
				Str("input", result.Input).
				Str("output", result.Output).
				Int64("size", result.OutputSize).
				Bool("executable", result.Executable).
				Msg("processed")

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					p.log.Error().Err(err).Str("input", result.Input).Msg("deleting failed")
				} else {
					p.log.Info().Str("input", result.Input).Msg("deleted")
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := OutputPath(file, p.cfg)

			result, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- result

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for the reporter to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile reads filename, transforms it and atomically writes the result to outPath.
func (p *Processor) processFile(filename, outPath string) (Result, error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return Result{}, fmt.Errorf("%w: output %q would overwrite its input", ErrProcessing, outPath)
	}

	out, err := fileutil.Create(filename, outPath)
	if err != nil {
		return Result{}, fmt.Errorf("preparing atomic write: %w", err)
	}
	defer out.Abort()

	if limit := maxInputSize(p.cfg.Decrypt); out.Source.Size() > limit {
		return Result{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, out.Source.Size(), limit)
	}

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return Result{}, fmt.Errorf("reading input file: %w", err)
	}

	var (
		output     []byte
		executable bool
	)

	if p.cfg.Decrypt {
		output, executable, err = Open(p.key, input, p.cfg.Workers)
		if err != nil {
			return Result{}, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		executable = out.SourceExecutable()

		output, err = Seal(p.key, input, executable, p.cfg.Workers)
		if err != nil {
			return Result{}, fmt.Errorf("encrypting file: %w", err)
		}
	}

	if _, err := out.Write(output); err != nil {
		return Result{}, fmt.Errorf("writing output: %w", err)
	}

	size, err := out.Commit(executable, p.cfg.PreserveTimestamps)
	if err != nil {
		return Result{}, fmt.Errorf("finalizing output: %w", err)
	}

	p.log.Debug().Str("input", filename).Str("output", outPath).Msg("committed")

	return Result{Input: filename, Output: outPath, OutputSize: size, Executable: executable}, nil
}

// maxInputSize is the largest file accepted for encryption or decryption.
func maxInputSize(decrypt bool) int64 {
	if decrypt {
		return int64(ctr.MaxDataSize) + int64(EnvelopeOverhead)
	}

	return int64(ctr.MaxDataSize)
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func OutputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
