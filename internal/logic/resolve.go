package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/bksq/internal/config"
)

// ErrNoFiles is returned when the positional arguments select nothing to process.
var ErrNoFiles = errors.New("no files to process")

// resolveFiles expands directories in cfg.Files into the regular files below them.
// Explicit files are always kept. Files found by walking are kept only if they
// carry the encrypted suffix when decrypting, and only if they do not when encrypting.
// It returns the number of candidate files seen.
func resolveFiles(cfg *config.Config) (int, error) {
	selected := func(path string) bool {
		sealed := strings.HasSuffix(path, cfg.Suffixes.Encrypt)

		return sealed == cfg.Decrypt
	}

	return expand(cfg, selected)
}

// resolveAll expands directories without suffix selection.
func resolveAll(cfg *config.Config) (int, error) {
	return expand(cfg, func(string) bool { return true })
}

func expand(cfg *config.Config, selected func(string) bool) (int, error) {
	var (
		files   []string
		scanned int
	)

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range cfg.Files {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.Type().IsRegular() {
				return nil
			}

			scanned++

			if selected(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return 0, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return scanned, fmt.Errorf("%w: %v", ErrNoFiles, cfg.Files)
	}

	cfg.Files = files

	return scanned, nil
}
