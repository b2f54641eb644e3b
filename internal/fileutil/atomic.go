// Package fileutil provides file system utilities.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFile streams writes into a temporary file that only replaces the
// destination on Commit. Readers see either the old file or the complete new
// one, never a partial conversion.
type AtomicFile struct {
	tmp  *os.File
	path string
	perm os.FileMode
	done bool
}

// CreateAtomic opens a temporary file next to path. The temp file lives in
// the same directory because cross-filesystem renames are not atomic.
func CreateAtomic(path string, perm os.FileMode) (*AtomicFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicFile{tmp: tmp, path: path, perm: perm}, nil
}

// Write appends to the temporary file.
func (f *AtomicFile) Write(p []byte) (int, error) {
	if f.done {
		return 0, os.ErrClosed
	}
	return f.tmp.Write(p)
}

// Commit syncs the temporary file and renames it over the destination.
func (f *AtomicFile) Commit() error {
	if f.done {
		return os.ErrClosed
	}
	f.done = true
	tmpPath := f.tmp.Name()

	if err := f.tmp.Sync(); err != nil {
		f.discard()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, f.perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Abort removes the temporary file, leaving the destination untouched. It is
// a no-op after Commit, so it can be deferred.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.discard()
}

func (f *AtomicFile) discard() {
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}
