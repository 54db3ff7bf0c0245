package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// ErrFileClosed is returned when writing to a committed or aborted AtomicFile.
var ErrFileClosed = errors.New("atomic file already closed")

// AtomicFile is a write-only file that becomes visible at its target path
// only when Close succeeds.
//
// Content is written to a temp file in the target directory. Close syncs the
// temp file, applies the mode and renames it over the target (atomic on
// POSIX). Abort removes the temp file and leaves the target untouched.
type AtomicFile struct {
	tmp  *os.File
	path string
	mode os.FileMode
	done bool
}

// CreateAtomic starts an atomic write to path. If mode is 0, DefaultFileMode is used.
func CreateAtomic(ctx context.Context, path string, mode os.FileMode) (*AtomicFile, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &AtomicFile{tmp: tmp, path: path, mode: mode}, nil
}

// Name returns the target path.
func (f *AtomicFile) Name() string {
	return f.path
}

// Write implements io.Writer.
func (f *AtomicFile) Write(p []byte) (int, error) {
	if f.done {
		return 0, ErrFileClosed
	}
	n, err := f.tmp.Write(p)
	if err != nil {
		return n, fmt.Errorf("write temp file: %w", err)
	}
	return n, nil
}

// Close commits the written content to the target path.
// On failure the temp file is removed and the target is left as it was.
func (f *AtomicFile) Close() error {
	if f.done {
		return ErrFileClosed
	}
	f.done = true

	tmpPath := f.tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = f.tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := f.tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := f.tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, f.mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// Abort discards the written content. It is a no-op after Close or Abort.
func (f *AtomicFile) Abort() error {
	if f.done {
		return nil
	}
	f.done = true

	_ = f.tmp.Close()
	if err := os.Remove(f.tmp.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}

// WriteAtomic writes content to path atomically using a temp file and rename.
// If mode is 0, DefaultFileMode (0644) is used.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	file, err := CreateAtomic(ctx, path, mode)
	if err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Abort()
		return err
	}

	return file.Close()
}

// WriteAtomicIfChanged writes content to path atomically only if the content differs.
// Returns true if the file was written, false if it was unchanged.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("read existing: %w", err)
		}
	} else if bytes.Equal(existing, content) {
		return false, nil
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}
