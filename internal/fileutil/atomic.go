// Package fileutil writes output files atomically next to their destination.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// AtomicFile is a temporary file that replaces its target on Commit.
type AtomicFile struct {
	// Source describes the input file the output is derived from.
	Source os.FileInfo

	tmp    *os.File
	target string
	done   bool
}

// Create stats source and opens a temporary file in the directory of target.
// Callers must defer Abort.
func Create(source, target string) (*AtomicFile, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", source, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-bksq-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &AtomicFile{Source: info, tmp: tmp, target: target}, nil
}

// SourceExecutable reports whether any execute bit is set on the source.
func (f *AtomicFile) SourceExecutable() bool {
	return f.Source.Mode()&executableBits != 0
}

// Write writes to the temporary file.
func (f *AtomicFile) Write(p []byte) (int, error) {
	return f.tmp.Write(p)
}

// Commit sets owner read/write permissions (plus execute bits when executable), closes the
// temporary file, renames it over the target and optionally copies the source modification time.
// It returns the size of the committed file.
func (f *AtomicFile) Commit(executable, preserveTimestamps bool) (int64, error) {
	perm := os.FileMode(ownerReadWrite)
	if executable {
		perm |= executableBits
	}

	if err := f.tmp.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := f.tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(f.tmp.Name(), f.target); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	f.done = true

	if preserveTimestamps {
		modTime := f.Source.ModTime()
		if err := os.Chtimes(f.target, time.Now(), modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(f.target)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", f.target, err)
	}

	return info.Size(), nil
}

// Abort removes the temporary file unless Commit succeeded.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}

	f.tmp.Close()           //nolint:errcheck,gosec // best-effort cleanup
	os.Remove(f.tmp.Name()) //nolint:errcheck,gosec // best-effort cleanup
}
